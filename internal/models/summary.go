package models

// Rejection reasons reported by the UK filter.
const (
	ReasonOutsideUK  = "outside_uk"
	ReasonDenylisted = "denylisted"
)

// HarvestSummary describes the outcome of one harvest run.
type HarvestSummary struct {
	Path         string
	Rows         int
	WithPostcode int

	Loaded     int
	Skipped    int
	Rejected   map[string]int
	Duplicates int
}
