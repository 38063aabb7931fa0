package models

type DashboardSummary struct {
	TotalContacts         int     `json:"totalContacts"`
	OpenDeals             int     `json:"openDeals"`
	WonDealsThisMonth     int     `json:"wonDealsThisMonth"`
	TotalPipelineValue    float64 `json:"totalPipelineValue"`
	NewLeadsThisMonth     int     `json:"newLeadsThisMonth"`
	AverageDaysInPipeline int     `json:"averageDaysInPipeline"`
}
