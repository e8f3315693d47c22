package ai

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrEmptyText is returned when there is nothing to analyze.
var ErrEmptyText = errors.New("No text provided.")

// ErrEmptyCompletion indicates the provider answered without any content.
var ErrEmptyCompletion = errors.New("ai returned an empty completion")
