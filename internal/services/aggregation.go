package services

import (
	"agentcrm/internal/models"
	"math"
	"time"
)

func sameCalendarMonth(timestamp string, reference time.Time) bool {
	parsed, ok := models.ParseTimestamp(timestamp)
	if !ok {
		return false
	}
	parsed = parsed.In(reference.Location())
	return parsed.Year() == reference.Year() && parsed.Month() == reference.Month()
}

// ComputeDashboardSummary derives the dashboard metrics. Open deals whose
// updatedAt cannot be parsed are left out of the average-days mean entirely;
// the average is still floored at 1 while any open deal exists.
func ComputeDashboardSummary(snapshot *models.Snapshot, now time.Time) models.DashboardSummary {
	summary := models.DashboardSummary{
		TotalContacts: len(snapshot.Contacts),
	}

	var totalDays float64
	var dated int
	for _, deal := range snapshot.Deals {
		switch deal.Status {
		case models.DealOpen:
			summary.OpenDeals++
			summary.TotalPipelineValue += deal.Value
			if updatedAt, ok := models.ParseTimestamp(deal.UpdatedAt); ok {
				totalDays += max(0, now.Sub(updatedAt).Hours()/24)
				dated++
			}
		case models.DealWon:
			if sameCalendarMonth(deal.UpdatedAt, now) {
				summary.WonDealsThisMonth++
			}
		}
	}

	for _, contact := range snapshot.Contacts {
		if sameCalendarMonth(contact.LastContactedOn, now) {
			summary.NewLeadsThisMonth++
		}
	}

	if summary.OpenDeals > 0 {
		average := 0
		if dated > 0 {
			average = int(math.Round(totalDays / float64(dated)))
		}
		summary.AverageDaysInPipeline = max(1, average)
	}

	return summary
}

// ComputePipeline groups deals into the four fixed buckets. Deals whose stage
// is not one of the bucket labels land in Discovery.
func ComputePipeline(snapshot *models.Snapshot) []models.PipelineStage {
	pipeline := make([]models.PipelineStage, len(models.PipelineStages))
	index := make(map[models.Stage]int, len(models.PipelineStages))
	for i, stage := range models.PipelineStages {
		pipeline[i] = models.PipelineStage{
			ID:    stage.ID(),
			Label: stage.Label(),
			Deals: []models.Deal{},
		}
		index[stage] = i
	}

	for _, deal := range snapshot.Deals {
		stage := models.ParseStage(deal.Stage)
		if stage == models.StageUnmatched {
			stage = models.StageDiscovery
		}
		i := index[stage]
		pipeline[i].Deals = append(pipeline[i].Deals, deal)
	}

	return pipeline
}
