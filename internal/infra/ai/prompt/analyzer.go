package prompt

import (
	"context"
	"regexp"
	"strings"

	"github.com/bryanwahyu/truthlens/internal/domain/analysis"
)

// HeuristicModel is the model name reported by HeuristicAnalyzer.
const HeuristicModel = "heuristic"

type detector struct {
	re     *regexp.Regexp
	flag   string
	reason string
	weight int
}

// Weights: 3 strong signal, 2 moderate, 1 weak.
var detectors = []detector{
	{regexp.MustCompile(`(?i)\b(you won'?t believe|shocking|mind[- ]blowing|what happens next|goes viral)\b`), "Clickbait", "uses sensational, attention-grabbing phrasing", 2},
	{regexp.MustCompile(`(?i)\b(doctors|scientists|experts) (hate|don'?t want you to know)\b`), "Clickbait", "frames experts as hiding information", 3},
	{regexp.MustCompile(`(?i)\b(cures?|guaranteed|100% (safe|effective|proven)|miracle)\b`), "Exaggerated Claim", "makes absolute or miraculous claims", 3},
	{regexp.MustCompile(`(?i)\b(studies show|research (shows|proves)|scientists say|experts say|sources say)\b`), "Unverified Claim", "cites unnamed studies or sources", 2},
	{regexp.MustCompile(`(?i)\b(everyone knows|it is a fact that|undeniabl[ey]|without a doubt|always|never)\b`), "Overgeneralization", "states opinions or generalizations as settled fact", 1},
	{regexp.MustCompile(`(?i)\b(cover[- ]?up|they don'?t want you|mainstream media (lies|hides)|wake up|hoax|plandemic)\b`), "Conspiratorial Framing", "relies on conspiratorial framing instead of evidence", 3},
	{regexp.MustCompile(`(?i)\b(disgusting|outrageous|evil|traitors?|idiots?|corrupt)\b`), "Potential Bias", "uses emotionally loaded or partisan language", 1},
	{regexp.MustCompile(`(?i)\b(share (this )?before (it'?s|they) (deleted|removed)|spread the word)\b`), "Urgency Pressure", "pressures readers to share quickly", 2},
}

var (
	reURL     = regexp.MustCompile(`(?i)https?://\S+`)
	reNumber  = regexp.MustCompile(`\d+(\.\d+)?\s?%`)
	reShouty  = regexp.MustCompile(`\b[A-Z]{4,}\b`)
	reBangs   = regexp.MustCompile(`!{2,}`)
	reCitedBy = regexp.MustCompile(`(?i)\b(according to|published in|reported by)\b`)
)

// HeuristicAnalyzer flags common misinformation signals with regular
// expressions. It needs no network access and answers in the same line format
// as the LLM analyzer.
type HeuristicAnalyzer struct{}

func NewHeuristicAnalyzer() *HeuristicAnalyzer { return &HeuristicAnalyzer{} }

func (*HeuristicAnalyzer) Model() string { return HeuristicModel }

func (h *HeuristicAnalyzer) Analyze(ctx context.Context, text string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return analysis.Format(AnalyzeText(text)), nil
}

// AnalyzeText scores text against the detectors.
func AnalyzeText(text string) analysis.ParsedResult {
	var flags, reasons []string
	seen := map[string]bool{}
	score := 0

	add := func(flag, reason string, weight int) {
		score += weight
		if seen[flag] {
			return
		}
		seen[flag] = true
		flags = append(flags, flag)
		reasons = append(reasons, reason)
	}

	for _, d := range detectors {
		if d.re.MatchString(text) {
			add(d.flag, d.reason, d.weight)
		}
	}

	sourced := reURL.MatchString(text) || reCitedBy.MatchString(text)
	if reNumber.MatchString(text) && !sourced {
		add("Unverified Claim", "quotes statistics without a source", 2)
	}
	if len(reShouty.FindAllString(text, -1)) >= 2 || reBangs.MatchString(text) {
		add("Sensational Tone", "uses all-caps or repeated exclamation marks", 1)
	}
	if sourced && score > 0 {
		score--
	}

	out := analysis.ParsedResult{}
	if len(flags) == 0 {
		out.Flags = "None"
		out.Explanation = "No common misinformation signals were found; this does not verify the claims."
		out.Confidence = "Low"
		return out
	}

	out.Flags = strings.Join(flags, ", ")
	out.Explanation = "The text " + joinReasons(reasons) + "."
	switch {
	case score >= 5:
		out.Confidence = "High"
	case score >= 3:
		out.Confidence = "Medium"
	default:
		out.Confidence = "Low"
	}
	return out
}

func joinReasons(r []string) string {
	switch len(r) {
	case 0:
		return ""
	case 1:
		return r[0]
	default:
		return strings.Join(r[:len(r)-1], ", ") + " and " + r[len(r)-1]
	}
}
