package orchestrator

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/bryanwahyu/truthlens/internal/domain/analysis"
)

// Controller owns the submit lifecycle: Idle -> Submitting -> Succeeded|Failed.
// Only one submission may be in flight, and only the latest submission's
// response may change the visible state.
type Controller struct {
	client analysis.Client
	log    logrus.FieldLogger

	mu        sync.Mutex
	state     State
	input     string
	result    string
	errMsg    string
	seq       uint64
	observers []func(Snapshot)
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for failure diagnostics.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Controller) { c.log = l }
}

func NewController(client analysis.Client, opts ...Option) *Controller {
	c := &Controller{client: client, log: logrus.StandardLogger()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Subscribe registers fn to be called with a snapshot after every transition.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.observers = append(c.observers, fn)
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// SetInput records the text the user is editing.
func (c *Controller) SetInput(text string) {
	c.mu.Lock()
	c.input = text
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// Reset returns to Idle and abandons any in-flight submission.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.seq++
	c.state = StateIdle
	c.result = ""
	c.errMsg = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)
}

// Submit sends text to the analysis service and blocks until the response
// is applied. It returns ErrEmptyInput or ErrInFlight without sending
// anything, ErrSuperseded when a newer submission or Reset won the race,
// and the *analysis.Error of a failed submission.
func (c *Controller) Submit(ctx context.Context, text string) error {
	c.mu.Lock()
	if strings.TrimSpace(text) == "" {
		c.mu.Unlock()
		return analysis.ErrEmptyInput
	}
	if c.state == StateSubmitting {
		c.mu.Unlock()
		return analysis.ErrInFlight
	}
	c.seq++
	seq := c.seq
	c.state = StateSubmitting
	c.input = text
	c.result = ""
	c.errMsg = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	resp, err := c.client.Analyze(ctx, analysis.AnalysisRequest{Text: text})
	if err == nil && resp.HasError() {
		err = analysis.ApplicationError(resp.Error)
	}
	if err != nil {
		var ae *analysis.Error
		if !errors.As(err, &ae) {
			ae = analysis.TransportError(err)
			err = ae
		}
		c.log.WithFields(logrus.Fields{
			"seq":  seq,
			"kind": ae.Kind.String(),
		}).WithError(err).Warn("analysis failed")
	}

	c.mu.Lock()
	if seq != c.seq {
		c.mu.Unlock()
		c.log.WithField("seq", seq).Debug("discarding stale analysis response")
		return analysis.ErrSuperseded
	}
	if err != nil {
		c.state = StateFailed
		c.errMsg = err.Error()
	} else {
		c.state = StateSucceeded
		c.result = resp.Result
	}
	snap = c.snapshotLocked()
	c.mu.Unlock()
	c.notify(snap)

	return err
}

func (c *Controller) snapshotLocked() Snapshot {
	return Snapshot{
		State:  c.state,
		Input:  c.input,
		Result: c.result,
		Error:  c.errMsg,
		Seq:    c.seq,
	}
}

func (c *Controller) notify(s Snapshot) {
	c.mu.Lock()
	obs := make([]func(Snapshot), len(c.observers))
	copy(obs, c.observers)
	c.mu.Unlock()
	for _, fn := range obs {
		fn(s)
	}
}
