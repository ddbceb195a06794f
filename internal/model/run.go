package model

import "time"

// Run is one persisted analysis batch: the configuration used and the ranked
// results it produced. Results are replaced wholesale on the next run.
type Run struct {
	ID            string           `json:"id"`
	Config        AnalysisConfig   `json:"config"`
	PropertyCount int              `json:"property_count"` // input rows, including skipped ones
	Results       []AnalysisResult `json:"results"`
	CreatedAt     time.Time        `json:"created_at"`
}
