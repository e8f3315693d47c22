package ai

import "context"

// Client analyzes a piece of text and answers in the
// "Flags:/Explanation:/Confidence:" line format.
type Client interface {
	Analyze(ctx context.Context, text string) (string, error)
	Model() string
}
