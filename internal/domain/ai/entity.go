package ai

import "time"

// AnalysisID identifier type
type AnalysisID string

// Analysis is one completed analysis. It is logged and its ID returned to
// the caller, never stored.
type Analysis struct {
	ID         AnalysisID `json:"id"`
	Text       string     `json:"-"`
	Result     string     `json:"result"`
	Model      string     `json:"model"`
	DurationMS int64      `json:"duration_ms"`
	CreatedAt  time.Time  `json:"created_at"`
}
