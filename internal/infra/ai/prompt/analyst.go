package prompt

import "fmt"

// GetSystemPrompt sets the analyst role and pins the three-line answer format.
func GetSystemPrompt() string {
	return `You are a careful fact-checking analyst. You review short texts for potential misinformation, bias, or lack of verifiable sources.

Requirements:
- Answer in plain text, no markdown, no code fences.
- Use exactly three lines, in this order:
Flags: [list of flags, e.g. 'Potential Bias', 'Unverified Claim'] or None
Explanation: ...
Confidence: High, Medium or Low`
}

// GetUserPrompt wraps the text to analyze.
func GetUserPrompt(text string) string {
	return fmt.Sprintf(
		"Analyze the following text for potential misinformation, bias, or lack of verifiable sources. "+
			"If there are issues, flag them and explain why. Be specific, and provide a confidence rating (High/Medium/Low):\n\n"+
			"Text: %s\n\n"+
			"Respond in this format:\n"+
			"Flags: [list of flags, e.g. 'Potential Bias', 'Unverified Claim']\n"+
			"Explanation: ...\n"+
			"Confidence: ...\n", text)
}
