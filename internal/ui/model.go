package ui

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bryanwahyu/truthlens/internal/application/orchestrator"
	"github.com/bryanwahyu/truthlens/internal/domain/analysis"
)

type snapshotMsg orchestrator.Snapshot

type submittedMsg struct{ err error }

// Model is the interactive analyzer screen. It only reads controller
// snapshots; all state changes go through the controller.
type Model struct {
	ctx     context.Context
	ctrl    *orchestrator.Controller
	input   textarea.Model
	spinner spinner.Model
	styles  Styles
	snap    orchestrator.Snapshot
	updates chan orchestrator.Snapshot
	width   int
}

func NewModel(ctx context.Context, ctrl *orchestrator.Controller, styles Styles) Model {
	ta := textarea.New()
	ta.Placeholder = "Paste a headline, post or article to analyze..."
	ta.ShowLineNumbers = false
	ta.SetHeight(6)
	ta.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:     ctx,
		ctrl:    ctrl,
		input:   ta,
		spinner: sp,
		styles:  styles,
		snap:    ctrl.Snapshot(),
		updates: make(chan orchestrator.Snapshot, 16),
	}
	updates := m.updates
	ctrl.Subscribe(func(s orchestrator.Snapshot) {
		// the final state is re-read on submittedMsg, so dropping is safe
		select {
		case updates <- s:
		default:
		}
	})
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.spinner.Tick, m.waitForSnapshot())
}

func (m Model) waitForSnapshot() tea.Cmd {
	return func() tea.Msg {
		select {
		case s := <-m.updates:
			return snapshotMsg(s)
		case <-m.ctx.Done():
			return nil
		}
	}
}

func (m Model) submit(text string) tea.Cmd {
	ctx, ctrl := m.ctx, m.ctrl
	return func() tea.Msg {
		return submittedMsg{err: ctrl.Submit(ctx, text)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(msg.Width - 2)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "ctrl+s":
			text := m.input.Value()
			if m.snap.Loading() || strings.TrimSpace(text) == "" {
				return m, nil
			}
			// show the loading state before the request returns; the bumped
			// seq keeps snapshots queued before the submit from replacing it
			m.snap.State = orchestrator.StateSubmitting
			m.snap.Result, m.snap.Error = "", ""
			m.snap.Seq++
			return m, m.submit(text)
		case "ctrl+r":
			m.ctrl.Reset()
			m.snap = m.ctrl.Snapshot()
			return m, nil
		}

	case snapshotMsg:
		if s := orchestrator.Snapshot(msg); supersedes(s, m.snap) {
			m.snap = s
		}
		return m, m.waitForSnapshot()

	case submittedMsg:
		if errors.Is(msg.err, analysis.ErrSuperseded) {
			return m, nil
		}
		m.snap = m.ctrl.Snapshot()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		m.ctrl.SetInput(v)
	}
	return m, cmd
}

// supersedes reports whether s should replace cur. Observer snapshots can
// arrive after the final state was read, so an older sequence, or a loading
// snapshot for a submission that already finished, is ignored.
func supersedes(s, cur orchestrator.Snapshot) bool {
	if s.Seq != cur.Seq {
		return s.Seq > cur.Seq
	}
	return cur.Loading() || !s.Loading()
}

func (m Model) View() string {
	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("TruthLens"))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("Check text for misinformation, bias and unverified claims."))
	sb.WriteString("\n\n")
	sb.WriteString(m.input.View())
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("ctrl+s analyze • ctrl+r reset • esc quit"))
	sb.WriteString("\n\n")

	if m.snap.Loading() {
		sb.WriteString(m.spinner.View() + " ")
	}
	if out := RenderSnapshot(m.snap, m.styles); out != "" {
		sb.WriteString(out)
		sb.WriteString("\n")
	}
	return sb.String()
}
