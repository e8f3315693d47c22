package analysis

// AnalysisRequest is the body sent to the analysis service.
type AnalysisRequest struct {
	Text string `json:"text"`
}

// AnalysisResponse is what the service answers on a 2xx status.
// Result and Error are mutually exclusive; an empty Error counts as absent.
type AnalysisResponse struct {
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// HasError reports whether the payload carries an application error.
func (r AnalysisResponse) HasError() bool {
	return r.Error != ""
}

// ParsedResult holds the labelled fields extracted from a result blob.
type ParsedResult struct {
	Flags       string `json:"flags"`
	Explanation string `json:"explanation"`
	Confidence  string `json:"confidence"`
}

// Severity returns the severity bucket of the confidence field.
func (p ParsedResult) Severity() Severity {
	return ClassifySeverity(p.Confidence)
}

// Severity bucket derived from the confidence text.
type Severity string

const (
	SeveritySevere   Severity = "severe"
	SeverityModerate Severity = "moderate"
	SeverityMild     Severity = "mild"
)

// Color returns the presentation colour band for the bucket.
func (s Severity) Color() string {
	switch s {
	case SeveritySevere:
		return "#e74c3c"
	case SeverityModerate:
		return "#f39c12"
	default:
		return "#27ae60"
	}
}
