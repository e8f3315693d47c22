package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bryanwahyu/truthlens/internal/domain/analysis"
)

// Styles groups the lipgloss styles used by the renderer.
type Styles struct {
	Title   lipgloss.Style
	Label   lipgloss.Style
	Body    lipgloss.Style
	Panel   lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Loading lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#667eea")),
		Label:   lipgloss.NewStyle().Bold(true),
		Body:    lipgloss.NewStyle(),
		Panel:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#764ba2")).Padding(0, 1),
		Error:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#e74c3c")).Foreground(lipgloss.Color("#e74c3c")).Padding(0, 1),
		Muted:   lipgloss.NewStyle().Faint(true),
		Loading: lipgloss.NewStyle().Italic(true),
	}
}

// Confidence colours the confidence text by its severity bucket.
func (s Styles) Confidence(sev analysis.Severity) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(sev.Color()))
}
