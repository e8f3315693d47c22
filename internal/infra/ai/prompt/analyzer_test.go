package prompt

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bryanwahyu/truthlens/internal/domain/analysis"
)

func TestAnalyzeTextClean(t *testing.T) {
	got := AnalyzeText("The city council meets on Tuesday to discuss the budget.")
	assert.Equal(t, "None", got.Flags)
	assert.Equal(t, "Low", got.Confidence)
	assert.Equal(t, analysis.SeverityMild, got.Severity())
}

func TestAnalyzeTextFlagsMisinformation(t *testing.T) {
	got := AnalyzeText("SHOCKING: doctors hate this miracle cure! Share before it's deleted, they don't want you to know the cover-up!!")
	assert.Contains(t, got.Flags, "Clickbait")
	assert.Contains(t, got.Flags, "Exaggerated Claim")
	assert.Contains(t, got.Flags, "Conspiratorial Framing")
	assert.Equal(t, "High", got.Confidence)
	assert.True(t, strings.HasPrefix(got.Explanation, "The text "))
}

func TestAnalyzeTextUnsourcedStatistic(t *testing.T) {
	got := AnalyzeText("Studies show 87% of people agree.")
	assert.Equal(t, "Unverified Claim", got.Flags)
	assert.Equal(t, "Medium", got.Confidence)
}

func TestAnalyzeTextSourcedLowersScore(t *testing.T) {
	got := AnalyzeText("Studies show 87% of people agree, according to https://example.org/report.")
	assert.Equal(t, "Unverified Claim", got.Flags)
	assert.Equal(t, "Low", got.Confidence)
}

func TestHeuristicAnalyzerOutputParses(t *testing.T) {
	h := NewHeuristicAnalyzer()
	assert.Equal(t, HeuristicModel, h.Model())

	out, err := h.Analyze(context.Background(), "You won't believe this miracle cure")
	require.NoError(t, err)

	parsed, ok := analysis.Parse(out)
	require.True(t, ok)
	assert.Equal(t, "Clickbait, Exaggerated Claim", parsed.Flags)
	assert.Equal(t, "High", parsed.Confidence)
	assert.Equal(t, analysis.SeveritySevere, parsed.Severity())
}

func TestHeuristicAnalyzerCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewHeuristicAnalyzer().Analyze(ctx, "text")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUserPromptEmbedsText(t *testing.T) {
	p := GetUserPrompt("vaccines contain microchips")
	assert.Contains(t, p, "Text: vaccines contain microchips")
	assert.Contains(t, p, "Confidence: ...")
	assert.Contains(t, GetSystemPrompt(), "Flags:")
}
