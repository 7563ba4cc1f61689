package domain

import "strings"

// CleanLabel normalizes an asset display label into a stable client-name key.
// The first word is always kept, even when numeric. If any later word
// contains a digit, every word after the first is dropped: policy labels
// encode numeric suffixes, and only the leading client token is stable.
// "Miami Office 12B Annex" becomes "Miami". Idempotent.
func CleanLabel(label string) string {
	words := strings.Fields(label)
	if len(words) == 0 {
		return ""
	}
	for _, w := range words[1:] {
		if containsDigit(w) {
			return words[0]
		}
	}
	return strings.Join(words, " ")
}
