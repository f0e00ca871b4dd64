package security

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxValueLength bounds logged input values.
const DefaultMaxValueLength = 120

var sensitiveSubstrings = []string{
	"token",
	"password",
	"authorization",
	"apikey",
	"api_key",
	"secret",
	"credential",
	"cookie",
	"session",
	"jwt",
	"bearer",
	"passwd",
	"pwd",
	"cpf",
	"email",
	"telefone",
	"phone",
}

// RedactInputs returns a copy of inputs safe for logs: sensitive keys are
// masked and long values are truncated to maxLen runes.
func RedactInputs(inputs map[string]string, maxLen int) map[string]string {
	if inputs == nil {
		return nil
	}
	if maxLen <= 0 {
		maxLen = DefaultMaxValueLength
	}
	redacted := make(map[string]string, len(inputs))
	for key, value := range inputs {
		if isSensitiveKey(key) {
			redacted[key] = "***"
			continue
		}
		redacted[key] = Truncate(value, maxLen)
	}
	return redacted
}

// RedactHeaders masks header values that carry credentials.
func RedactHeaders(headers map[string]string) map[string]string {
	if headers == nil {
		return nil
	}
	redacted := make(map[string]string, len(headers))
	for key, value := range headers {
		if isSensitiveKey(key) || strings.EqualFold(key, "x-api-key") {
			redacted[key] = "***"
			continue
		}
		redacted[key] = value
	}
	return redacted
}

// Truncate shortens value to maxLen runes, marking the cut with an ellipsis.
func Truncate(value string, maxLen int) string {
	if maxLen <= 0 || utf8.RuneCountInString(value) <= maxLen {
		return value
	}
	runes := []rune(value)
	return string(runes[:maxLen]) + "…"
}

func isSensitiveKey(key string) bool {
	lower := strings.ToLower(strings.TrimSpace(key))
	for _, part := range sensitiveSubstrings {
		if strings.Contains(lower, part) {
			return true
		}
	}
	return false
}
