package ui

import (
	"strings"

	"github.com/bryanwahyu/truthlens/internal/application/orchestrator"
	"github.com/bryanwahyu/truthlens/internal/domain/analysis"
)

// RenderSnapshot draws the loading line, the error panel or the result
// panel for s. It returns "" when there is nothing to show.
func RenderSnapshot(s orchestrator.Snapshot, st Styles) string {
	switch {
	case s.Loading():
		return st.Loading.Render("Analyzing...")
	case s.Error != "":
		return st.Error.Render(st.Label.Render("Error") + "\n" + s.Error)
	}
	parsed, ok := s.Parsed()
	if !ok {
		return ""
	}
	return RenderResult(parsed, st)
}

// RenderResult draws the sections present in p; empty sections are omitted.
func RenderResult(p analysis.ParsedResult, st Styles) string {
	var sections []string
	if p.Flags != "" {
		sections = append(sections, st.Label.Render("Flags")+"\n"+st.Body.Render(p.Flags))
	}
	if p.Explanation != "" {
		sections = append(sections, st.Label.Render("Explanation")+"\n"+st.Body.Render(p.Explanation))
	}
	if p.Confidence != "" {
		sev := p.Severity()
		sections = append(sections, st.Label.Render("Confidence")+"\n"+
			st.Confidence(sev).Render(p.Confidence)+" "+st.Muted.Render("("+string(sev)+")"))
	}
	if len(sections) == 0 {
		return st.Panel.Render(st.Muted.Render("No flags, explanation or confidence in the response."))
	}
	return st.Panel.Render(strings.Join(sections, "\n\n"))
}
