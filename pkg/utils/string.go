package utils

import "unicode/utf8"

// Truncate cuts s to at most maxLen bytes plus an ellipsis marker, backing
// up to a rune boundary so the result is always valid UTF-8.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
