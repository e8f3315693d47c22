package ui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/truthlens/internal/application/orchestrator"
	"github.com/bryanwahyu/truthlens/internal/domain/analysis"
	"github.com/bryanwahyu/truthlens/internal/logging"
)

type staticClient struct {
	resp  analysis.AnalysisResponse
	err   error
	calls int
}

func (s *staticClient) Analyze(context.Context, analysis.AnalysisRequest) (analysis.AnalysisResponse, error) {
	s.calls++
	return s.resp, s.err
}

func TestRenderSnapshot(t *testing.T) {
	st := DefaultStyles()

	assert.Empty(t, RenderSnapshot(orchestrator.Snapshot{}, st))
	assert.Empty(t, RenderSnapshot(orchestrator.Snapshot{State: orchestrator.StateSucceeded}, st))
	assert.Contains(t, RenderSnapshot(orchestrator.Snapshot{State: orchestrator.StateSubmitting}, st), "Analyzing...")

	errView := RenderSnapshot(orchestrator.Snapshot{State: orchestrator.StateFailed, Error: "model unavailable"}, st)
	assert.Contains(t, errView, "model unavailable")

	view := RenderSnapshot(orchestrator.Snapshot{
		State:  orchestrator.StateSucceeded,
		Result: "Confidence: medium",
	}, st)
	assert.Contains(t, view, "Confidence")
	assert.Contains(t, view, "medium")
	assert.Contains(t, view, "(moderate)")
	assert.NotContains(t, view, "Flags")
	assert.NotContains(t, view, "Explanation")
}

func TestRenderResultEmptyFields(t *testing.T) {
	view := RenderResult(analysis.ParsedResult{}, DefaultStyles())
	assert.Contains(t, view, "No flags, explanation or confidence")
}

func typeText(m tea.Model, text string) tea.Model {
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return m
}

func TestModelSubmitFlow(t *testing.T) {
	client := &staticClient{resp: analysis.AnalysisResponse{
		Result: "Flags: clickbait\nExplanation: uses exaggerated claims\nConfidence: High",
	}}
	ctrl := orchestrator.NewController(client, orchestrator.WithLogger(logging.Discard()))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var m tea.Model = NewModel(ctx, ctrl, DefaultStyles())

	// blank input does not submit
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, client.calls)

	m = typeText(m, "miracle cure found")
	assert.Equal(t, "miracle cure found", ctrl.Snapshot().Input)

	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Analyzing...")

	// a second ctrl+s while loading is ignored
	_, again := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, again)

	m, _ = m.Update(cmd())
	assert.Equal(t, 1, client.calls)

	view := m.View()
	assert.Contains(t, view, "clickbait")
	assert.Contains(t, view, "uses exaggerated claims")
	assert.Contains(t, view, "(severe)")
	assert.NotContains(t, view, "Analyzing...")

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.NotContains(t, m.View(), "clickbait")
	assert.Equal(t, orchestrator.StateIdle, ctrl.Snapshot().State)
}

func TestModelShowsError(t *testing.T) {
	client := &staticClient{err: analysis.ProtocolError(500, "Internal Server Error")}
	ctrl := orchestrator.NewController(client, orchestrator.WithLogger(logging.Discard()))

	var m tea.Model = NewModel(context.Background(), ctrl, DefaultStyles())
	m = typeText(m, "hello")
	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())

	assert.Contains(t, m.View(), "HTTP 500: Internal Server Error")
}

func TestSupersedes(t *testing.T) {
	done := orchestrator.Snapshot{State: orchestrator.StateSucceeded, Seq: 2}
	assert.False(t, supersedes(orchestrator.Snapshot{State: orchestrator.StateSubmitting, Seq: 2}, done))
	assert.False(t, supersedes(orchestrator.Snapshot{State: orchestrator.StateSucceeded, Seq: 1}, done))
	assert.True(t, supersedes(orchestrator.Snapshot{State: orchestrator.StateSubmitting, Seq: 3}, done))

	loading := orchestrator.Snapshot{State: orchestrator.StateSubmitting, Seq: 2}
	assert.True(t, supersedes(done, loading))
}

func TestQuitKeys(t *testing.T) {
	ctrl := orchestrator.NewController(&staticClient{}, orchestrator.WithLogger(logging.Discard()))
	var m tea.Model = NewModel(context.Background(), ctrl, DefaultStyles())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
	assert.True(t, strings.Contains(m.View(), "TruthLens"))
}

func TestModelKeepsLoadingAgainstQueuedSnapshots(t *testing.T) {
	ctrl := orchestrator.NewController(&staticClient{}, orchestrator.WithLogger(logging.Discard()))
	var m tea.Model = NewModel(context.Background(), ctrl, DefaultStyles())

	m = typeText(m, "x")
	queued := ctrl.Snapshot()
	require.Equal(t, orchestrator.StateIdle, queued.State)

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)
	require.True(t, m.(Model).snap.Loading())

	m, _ = m.Update(snapshotMsg(queued))
	assert.True(t, m.(Model).snap.Loading())
	assert.Contains(t, m.View(), "Analyzing...")

	_, again := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.Nil(t, again)
}
