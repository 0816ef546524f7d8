// Package redact removes sensitive details (credentials, keys, file paths,
// stack traces, email addresses) from strings before they are logged. Error
// text never reaches API clients; redaction keeps it safe for the logs too.
package redact

import (
	"fmt"
	"regexp"
)

// Placeholders substituted for redacted content.
const (
	RedactionPlaceholder          = "[REDACTED]"
	RedactedPathPlaceholder       = "[REDACTED_PATH]"
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
	RedactedEmailPlaceholder      = "[REDACTED_EMAIL]"
	RedactedStackTracePlaceholder = "[STACK_TRACE_REDACTED]"
)

type rule struct {
	pattern     *regexp.Regexp
	placeholder string
}

// Rules run in order; stack traces go first so their file paths are
// swallowed whole.
var rules = []rule{
	{
		pattern:     regexp.MustCompile(`(?:goroutine \d+|panic:)[\s\S]*?(\n\t.*)+`),
		placeholder: RedactedStackTracePlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(password|passwd|pwd)([=:\s]?['"]?)[^'"&\s]{3,}`),
		placeholder: RedactedCredentialPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(?i)(api[_-]?key|token|secret|key|access|auth)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`),
		placeholder: RedactedKeyPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`),
		placeholder: RedactedEmailPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`(/[\w.-]+){2,}`),
		placeholder: RedactedPathPlaceholder,
	},
	{
		pattern:     regexp.MustCompile(`[A-Za-z]:\\[^\\]+(\\[^\\]+)+`),
		placeholder: RedactedPathPlaceholder,
	},
}

// String redacts sensitive information from the input string.
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, r := range rules {
		result = r.pattern.ReplaceAllString(result, r.placeholder)
	}
	return result
}

// Error redacts sensitive information from an error's Error() output.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}

// Value redacts the fmt representation of an arbitrary value, such as the
// argument of a recovered panic.
func Value(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case error:
		return Error(val)
	case string:
		return String(val)
	default:
		return String(fmt.Sprintf("%v", val))
	}
}
