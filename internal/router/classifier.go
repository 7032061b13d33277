package router

import "regexp"

var (
	dateRe      = regexp.MustCompile(datePattern)
	dateTokenRe = regexp.MustCompile(dateTokenPattern)
	weatherRe   = regexp.MustCompile(weatherPattern)
)

// Classify returns the intent of utterance. Rules are evaluated in fixed
// precedence Date > Weather > Knowledge, so every input yields exactly one intent.
// A date phrase always wins; a bare date token wins only over Knowledge.
func Classify(utterance string) Intent {
	switch {
	case dateRe.MatchString(utterance):
		return IntentDate
	case weatherRe.MatchString(utterance):
		return IntentWeather
	case dateTokenRe.MatchString(utterance):
		return IntentDate
	default:
		return IntentKnowledge
	}
}
