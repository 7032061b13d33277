package telegram

import (
	"strings"
	"unicode"
)

// splitMessage cuts text into chunks of at most limit runes, preferring to
// break after the last newline or space inside each window.
func splitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > limit {
		cut := limit
		if i := lastBreak(runes[:limit]); i > 0 {
			cut = i + 1
		}
		if chunk := strings.TrimSpace(string(runes[:cut])); chunk != "" {
			chunks = append(chunks, chunk)
		}
		runes = runes[cut:]
	}
	if rest := strings.TrimSpace(string(runes)); rest != "" {
		chunks = append(chunks, rest)
	}
	return chunks
}

// lastBreak returns the index of the last newline in window, else the last
// space, else -1.
func lastBreak(window []rune) int {
	space := -1
	for i := len(window) - 1; i >= 0; i-- {
		if window[i] == '\n' {
			return i
		}
		if space < 0 && unicode.IsSpace(window[i]) {
			space = i
		}
	}
	return space
}
