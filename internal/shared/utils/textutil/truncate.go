// Package textutil provides small text helpers used by delegated title
// derivation.
package textutil

import "unicode/utf8"

// Truncate shortens s to at most maxLen characters. Length is counted in
// runes, not bytes, so multibyte content is never cut mid-character. If s is
// longer than maxLen, the result ends in "..." and its total character count
// is exactly maxLen. maxLen values of 3 or less collapse to the bare marker.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	marker := "..."
	if maxLen <= len(marker) {
		return marker
	}
	return string([]rune(s)[:maxLen-len(marker)]) + marker
}
