package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/truthlens/internal/domain/analysis"
	"github.com/bryanwahyu/truthlens/internal/logging"
)

type reply struct {
	resp analysis.AnalysisResponse
	err  error
}

// fakeClient answers each call with the next reply pushed on its channel.
type fakeClient struct {
	mu       sync.Mutex
	requests []analysis.AnalysisRequest
	started  chan struct{}
	replies  chan reply
}

func newFakeClient() *fakeClient {
	return &fakeClient{started: make(chan struct{}, 8), replies: make(chan reply, 8)}
}

func (f *fakeClient) Analyze(ctx context.Context, req analysis.AnalysisRequest) (analysis.AnalysisResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	f.started <- struct{}{}
	select {
	case r := <-f.replies:
		return r.resp, r.err
	case <-ctx.Done():
		return analysis.AnalysisResponse{}, analysis.TransportError(ctx.Err())
	}
}

func (f *fakeClient) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func newTestController(client analysis.Client) *Controller {
	return NewController(client, WithLogger(logging.Discard()))
}

func waitStarted(t *testing.T, f *fakeClient) {
	t.Helper()
	select {
	case <-f.started:
	case <-time.After(2 * time.Second):
		t.Fatal("request was not sent")
	}
}

func TestSubmitSuccess(t *testing.T) {
	f := newFakeClient()
	c := newTestController(f)
	f.replies <- reply{resp: analysis.AnalysisResponse{
		Result: "Flags: clickbait\nExplanation: uses exaggerated claims\nConfidence: High",
	}}

	require.NoError(t, c.Submit(context.Background(), "some headline"))
	<-f.started

	snap := c.Snapshot()
	assert.Equal(t, StateSucceeded, snap.State)
	assert.Empty(t, snap.Error)
	parsed, ok := snap.Parsed()
	require.True(t, ok)
	assert.Equal(t, analysis.ParsedResult{
		Flags:       "clickbait",
		Explanation: "uses exaggerated claims",
		Confidence:  "High",
	}, parsed)
	assert.Equal(t, analysis.SeveritySevere, parsed.Severity())
	assert.Equal(t, "some headline", f.requests[0].Text)
}

func TestSubmitRejectsBlankInput(t *testing.T) {
	f := newFakeClient()
	c := newTestController(f)

	assert.ErrorIs(t, c.Submit(context.Background(), ""), analysis.ErrEmptyInput)
	assert.ErrorIs(t, c.Submit(context.Background(), "  \n\t"), analysis.ErrEmptyInput)
	assert.Equal(t, 0, f.calls())
	assert.Equal(t, StateIdle, c.Snapshot().State)
}

func TestSubmitRejectsWhileInFlight(t *testing.T) {
	f := newFakeClient()
	c := newTestController(f)

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background(), "first") }()
	waitStarted(t, f)

	assert.True(t, c.Snapshot().Loading())
	assert.ErrorIs(t, c.Submit(context.Background(), "second"), analysis.ErrInFlight)
	assert.Equal(t, 1, f.calls())

	f.replies <- reply{resp: analysis.AnalysisResponse{Result: "Confidence: Low"}}
	require.NoError(t, <-done)
	assert.Equal(t, StateSucceeded, c.Snapshot().State)
}

func TestSubmitClearsPreviousState(t *testing.T) {
	f := newFakeClient()
	c := newTestController(f)

	f.replies <- reply{resp: analysis.AnalysisResponse{Error: "model unavailable"}}
	err := c.Submit(context.Background(), "first")
	require.Error(t, err)
	<-f.started
	assert.Equal(t, "model unavailable", c.Snapshot().Error)

	var seen []Snapshot
	c.Subscribe(func(s Snapshot) { seen = append(seen, s) })

	done := make(chan error, 1)
	go func() { done <- c.Submit(context.Background(), "second") }()
	waitStarted(t, f)

	mid := c.Snapshot()
	assert.Equal(t, StateSubmitting, mid.State)
	assert.Empty(t, mid.Error)
	assert.Empty(t, mid.Result)

	f.replies <- reply{resp: analysis.AnalysisResponse{Result: "Flags: none"}}
	require.NoError(t, <-done)

	require.Len(t, seen, 2)
	assert.Equal(t, StateSubmitting, seen[0].State)
	assert.Empty(t, seen[0].Error)
	assert.Equal(t, StateSucceeded, seen[1].State)
}

func TestSubmitFailures(t *testing.T) {
	testCases := []struct {
		name     string
		reply    reply
		expected string
		kind     analysis.ErrorKind
	}{
		{
			name:     "application error is shown verbatim",
			reply:    reply{resp: analysis.AnalysisResponse{Error: "model unavailable"}},
			expected: "model unavailable",
			kind:     analysis.KindApplication,
		},
		{
			name:     "protocol error",
			reply:    reply{err: analysis.ProtocolError(500, "Internal Server Error")},
			expected: "HTTP 500: Internal Server Error",
			kind:     analysis.KindProtocol,
		},
		{
			name:     "transport error",
			reply:    reply{err: analysis.TransportError(errors.New("connection refused"))},
			expected: "Network error: connection refused",
			kind:     analysis.KindTransport,
		},
		{
			name:     "untyped error is treated as transport",
			reply:    reply{err: errors.New("boom")},
			expected: "Network error: boom",
			kind:     analysis.KindTransport,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFakeClient()
			c := newTestController(f)
			f.replies <- tc.reply

			err := c.Submit(context.Background(), "text")
			var ae *analysis.Error
			require.ErrorAs(t, err, &ae)
			assert.Equal(t, tc.kind, ae.Kind)

			snap := c.Snapshot()
			assert.Equal(t, StateFailed, snap.State)
			assert.Equal(t, tc.expected, snap.Error)
			assert.False(t, snap.HasResult())
		})
	}
}

func TestSubmitEmptyResultShowsNothing(t *testing.T) {
	f := newFakeClient()
	c := newTestController(f)
	f.replies <- reply{resp: analysis.AnalysisResponse{}}

	require.NoError(t, c.Submit(context.Background(), "text"))
	snap := c.Snapshot()
	assert.Equal(t, StateSucceeded, snap.State)
	assert.False(t, snap.HasResult())
	assert.Empty(t, snap.Error)
}

func TestResetDiscardsStaleResponse(t *testing.T) {
	f := newFakeClient()
	c := newTestController(f)

	stale := make(chan error, 1)
	go func() { stale <- c.Submit(context.Background(), "slow") }()
	waitStarted(t, f)

	c.Reset()
	assert.Equal(t, StateIdle, c.Snapshot().State)

	fresh := make(chan error, 1)
	go func() { fresh <- c.Submit(context.Background(), "fast") }()
	waitStarted(t, f)

	// Both calls are blocked on the replies channel; whichever call takes
	// the first reply, the fresh submission must be the one that lands.
	f.replies <- reply{resp: analysis.AnalysisResponse{Result: "Flags: one"}}
	f.replies <- reply{resp: analysis.AnalysisResponse{Result: "Flags: two"}}

	assert.ErrorIs(t, <-stale, analysis.ErrSuperseded)
	require.NoError(t, <-fresh)

	snap := c.Snapshot()
	assert.Equal(t, StateSucceeded, snap.State)
	assert.Equal(t, "fast", snap.Input)
	assert.Equal(t, uint64(3), snap.Seq)
}

func TestSetInput(t *testing.T) {
	c := newTestController(newFakeClient())
	c.SetInput("draft")
	assert.Equal(t, "draft", c.Snapshot().Input)
	assert.Equal(t, StateIdle, c.Snapshot().State)
}

// stateAtLog records the controller state whenever an entry is written.
type stateAtLog struct {
	c      *Controller
	states []State
}

func (h *stateAtLog) Levels() []logrus.Level { return logrus.AllLevels }

func (h *stateAtLog) Fire(*logrus.Entry) error {
	h.states = append(h.states, h.c.Snapshot().State)
	return nil
}

func TestFailureLoggedBeforeStateUpdate(t *testing.T) {
	log, hook := logtest.NewNullLogger()
	f := newFakeClient()
	c := NewController(f, WithLogger(log))
	seen := &stateAtLog{c: c}
	log.AddHook(seen)

	f.replies <- reply{err: analysis.ProtocolError(503, "Service Unavailable")}
	err := c.Submit(context.Background(), "headline")
	assert.EqualError(t, err, "HTTP 503: Service Unavailable")

	require.Len(t, hook.AllEntries(), 1)
	entry := hook.LastEntry()
	assert.Equal(t, logrus.WarnLevel, entry.Level)
	assert.Equal(t, "protocol", entry.Data["kind"])
	assert.Equal(t, []State{StateSubmitting}, seen.states)
	assert.Equal(t, StateFailed, c.Snapshot().State)
}
