package router

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	cityRe        = regexp.MustCompile(cityPattern)
	punctuationRe = regexp.MustCompile(trailingPunctuation)
)

// ExtractCity returns a best-effort city name for a weather utterance.
// The second result is false when nothing place-like survives noise filtering.
func ExtractCity(utterance string) (string, bool) {
	candidate := rawCandidate(utterance)
	candidate = punctuationRe.ReplaceAllString(candidate, "")

	words := strings.Fields(strings.ToLower(candidate))
	kept := words[:0]
	for _, w := range words {
		if _, noise := noiseWords[w]; noise {
			continue
		}
		kept = append(kept, w)
	}
	if len(kept) == 0 {
		return "", false
	}

	return Normalize(strings.Join(kept, " ")), true
}

// rawCandidate prefers an explicit "in <place>" / "for <place>" mention and
// falls back to the last token of the utterance.
func rawCandidate(utterance string) string {
	if m := cityRe.FindStringSubmatch(utterance); m != nil {
		return strings.TrimSpace(m[1])
	}

	tokens := strings.Fields(utterance)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[len(tokens)-1]
}

// Normalize collapses whitespace and title-cases every word.
// Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	// cases.Caser is stateful, so each call gets its own.
	title := cases.Title(language.English)
	return title.String(strings.Join(strings.Fields(s), " "))
}
