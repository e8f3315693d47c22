package analysis

import "strings"

const (
	labelFlags       = "Flags:"
	labelExplanation = "Explanation:"
	labelConfidence  = "Confidence:"
)

// Parse extracts flags, explanation and confidence from a newline-delimited
// result blob. It never fails: unknown lines are skipped and missing labels
// leave their field empty. When a label repeats, the last line wins.
// The boolean is false when raw is empty, meaning there is nothing to show.
func Parse(raw string) (ParsedResult, bool) {
	if raw == "" {
		return ParsedResult{}, false
	}

	var p ParsedResult
	for _, line := range strings.Split(raw, "\n") {
		switch {
		case strings.HasPrefix(line, labelFlags):
			p.Flags = strings.TrimSpace(strings.TrimPrefix(line, labelFlags))
		case strings.HasPrefix(line, labelExplanation):
			p.Explanation = strings.TrimSpace(strings.TrimPrefix(line, labelExplanation))
		case strings.HasPrefix(line, labelConfidence):
			p.Confidence = strings.TrimSpace(strings.TrimPrefix(line, labelConfidence))
		}
	}
	return p, true
}

// ClassifySeverity buckets a confidence string: "high" is severe,
// "medium" is moderate, anything else (empty included) is mild.
func ClassifySeverity(confidence string) Severity {
	c := strings.ToLower(confidence)
	switch {
	case strings.Contains(c, "high"):
		return SeveritySevere
	case strings.Contains(c, "medium"):
		return SeverityModerate
	default:
		return SeverityMild
	}
}

// Format renders a ParsedResult back into the labelled line format the
// service answers with. Empty fields are still written so the three lines
// always appear in order.
func Format(p ParsedResult) string {
	var sb strings.Builder
	sb.WriteString(labelFlags + " " + p.Flags + "\n")
	sb.WriteString(labelExplanation + " " + p.Explanation + "\n")
	sb.WriteString(labelConfidence + " " + p.Confidence)
	return sb.String()
}
