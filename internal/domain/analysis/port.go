package analysis

import "context"

// Client port for reaching the analysis service.
// A returned error is always an *Error; a nil error means a 2xx response
// whose payload may still carry an application error.
type Client interface {
	Analyze(ctx context.Context, req AnalysisRequest) (AnalysisResponse, error)
}
