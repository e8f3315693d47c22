package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Error messages returned to clients of /analyze.
const (
	MsgInvalidJSON = "Invalid JSON"
	MsgNoText      = "No text provided."
	MsgTextTooLong = "Text too long."
)

// AnalyzeBody is the decoded body of POST /analyze.
type AnalyzeBody struct {
	Text string `json:"text" validate:"required"`
}

// ValidationError is a client error with the message to return verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// DecodeAnalyzeBody decodes and validates the request body. The text is
// sanitized but not trimmed beyond control characters.
func DecodeAnalyzeBody(r *http.Request, maxChars int) (AnalyzeBody, error) {
	var body AnalyzeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		return body, &ValidationError{Message: MsgInvalidJSON}
	}
	body.Text = SanitizeText(body.Text)

	if err := validate.Struct(body); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return body, &ValidationError{Message: MsgNoText}
		}
		return body, err
	}
	if maxChars > 0 && utf8.RuneCountInString(body.Text) > maxChars {
		return body, &ValidationError{Message: MsgTextTooLong}
	}
	return body, nil
}

// SanitizeText removes null bytes and control characters other than tab,
// newline and carriage return.
func SanitizeText(input string) string {
	if !strings.ContainsFunc(input, isControl) {
		return input
	}
	var result strings.Builder
	for _, r := range input {
		if !isControl(r) {
			result.WriteRune(r)
		}
	}
	return result.String()
}

func isControl(r rune) bool {
	return (r < 32 && r != '\t' && r != '\n' && r != '\r') || r == 0x7f
}

// WriteJSONError writes {"error": msg} with the given status.
func WriteJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
