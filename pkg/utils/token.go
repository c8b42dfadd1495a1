package utils

import "strings"

// EstimateTokens approximates the token count of text: whitespace-split word
// count times 1.3. A heuristic, not a tokenizer; it only feeds the
// token_count metadata column.
func EstimateTokens(text string) int {
	if text == "" {
		return 0
	}
	return int(float64(len(strings.Fields(text))) * 1.3)
}
