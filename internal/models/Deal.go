package models

type DealStatus string

const (
	DealOpen DealStatus = "open"
	DealWon  DealStatus = "won"
	DealLost DealStatus = "lost"
)

// Deal.Stage is free-form: values outside the pipeline labels are legal and
// are grouped as Discovery by the pipeline view.
type Deal struct {
	ID        string     `json:"id"`
	Title     string     `json:"title"`
	Value     float64    `json:"value"`
	Status    DealStatus `json:"status"`
	Stage     string     `json:"stage"`
	UpdatedAt string     `json:"updatedAt"`
}
