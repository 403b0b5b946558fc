// Package security screens incoming chat text before it reaches the
// assistant pipeline.
package security

import (
	"regexp"
	"strings"
)

var (
	scriptTags    = regexp.MustCompile(`(?is)<script\b.*?</script>`)
	jsProtocol    = regexp.MustCompile(`(?i)javascript:`)
	eventHandlers = regexp.MustCompile(`(?i)\bon\w+\s*=`)

	suspiciousPatterns = []string{
		"<script",
		"javascript:",
		"data:text/html",
		"vbscript:",
	}
)

// Sanitize strips script tags, javascript: protocols and inline event
// handlers from user input and trims surrounding whitespace.
func Sanitize(input string) string {
	s := scriptTags.ReplaceAllString(input, "")
	s = jsProtocol.ReplaceAllString(s, "")
	s = eventHandlers.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// Suspicious reports whether the raw input carries markup that should be
// rejected outright rather than cleaned up.
func Suspicious(input string) bool {
	lower := strings.ToLower(input)
	for _, p := range suspiciousPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}
