package orchestrator

import "github.com/bryanwahyu/truthlens/internal/domain/analysis"

// State of the interaction lifecycle.
type State int

const (
	StateIdle State = iota
	StateSubmitting
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the controller state.
type Snapshot struct {
	State  State  `json:"state"`
	Input  string `json:"input"`
	Result string `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
	Seq    uint64 `json:"seq"`
}

// Loading reports whether a submission is in flight.
func (s Snapshot) Loading() bool {
	return s.State == StateSubmitting
}

// Parsed recomputes the ParsedResult from the raw result. It is never cached.
func (s Snapshot) Parsed() (analysis.ParsedResult, bool) {
	return analysis.Parse(s.Result)
}

// HasResult reports whether a result panel should be shown.
func (s Snapshot) HasResult() bool {
	_, ok := s.Parsed()
	return ok
}
