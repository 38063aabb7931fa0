package services

import (
	"agentcrm/internal/models"
	"time"

	"github.com/google/uuid"
)

const day = 24 * time.Hour

// SeedSnapshot returns the demo data set with timestamps relative to now.
func SeedSnapshot(now time.Time) *models.Snapshot {
	ago := func(d time.Duration) string {
		return models.FormatTimestamp(now.Add(-d))
	}

	return &models.Snapshot{
		Contacts: []models.Contact{
			{
				ID:              uuid.NewString(),
				Name:            "Harper Realty Group",
				Email:           "contact@harperrealty.com",
				Phone:           "(415) 555-0186",
				Stage:           "Discovery",
				LastContactedOn: ago(0),
			},
			{
				ID:              uuid.NewString(),
				Name:            "Rivera Family",
				Email:           "luis@riverahomes.com",
				Phone:           "(305) 555-0149",
				Stage:           "Negotiation",
				LastContactedOn: ago(6 * day),
			},
			{
				ID:              uuid.NewString(),
				Name:            "Aster Commercial",
				Email:           "leasing@astercommercial.com",
				Phone:           "(212) 555-0193",
				Stage:           "Proposal",
				LastContactedOn: ago(12 * day),
			},
		},
		Deals: []models.Deal{
			{
				ID:        uuid.NewString(),
				Title:     "Marina Point Condos",
				Value:     840000,
				Status:    models.DealOpen,
				Stage:     "Discovery",
				UpdatedAt: ago(0),
			},
			{
				ID:        uuid.NewString(),
				Title:     "Cedar Avenue Estate",
				Value:     1250000,
				Status:    models.DealOpen,
				Stage:     "Proposal",
				UpdatedAt: ago(2 * day),
			},
			{
				ID:        uuid.NewString(),
				Title:     "Elm Street Retail",
				Value:     460000,
				Status:    models.DealWon,
				Stage:     "Closed",
				UpdatedAt: ago(14 * day),
			},
		},
	}
}
