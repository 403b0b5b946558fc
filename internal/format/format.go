// Package format normalizes raw model output into a consistent display form.
// All transforms are cosmetic and idempotent; the content itself is never
// reinterpreted.
package format

import (
	"regexp"
	"strings"
)

var (
	// A newline followed by two or more blank (or whitespace-only) lines
	// collapses to a single paragraph boundary.
	excessiveBreaks = regexp.MustCompile(`\n(?:[ \t]*\n){2,}`)

	// Leading - or * list markers become a single bullet glyph. The marker
	// must be followed by whitespace so bold markup like **text survives.
	dashBullets = regexp.MustCompile(`(?m)^[ \t]*[-*][ \t]+`)

	// 1) and 1. style markers normalize to the canonical "1. " form.
	numberMarkers = regexp.MustCompile(`(?m)^([ \t]*)(\d+)[.)][ \t]*`)
)

// Text normalizes raw model text for display: surrounding whitespace is
// trimmed, runs of 3+ newlines collapse to exactly 2, and list markers are
// canonicalized. Applying Text twice yields the same result as applying it
// once.
func Text(raw string) string {
	s := strings.TrimSpace(raw)
	s = excessiveBreaks.ReplaceAllString(s, "\n\n")
	s = dashBullets.ReplaceAllString(s, "• ")
	s = numberMarkers.ReplaceAllString(s, "${1}${2}. ")
	return s
}
