package router

// Log prefixes
const (
	LogPrefixRoute = "internal.router.Route"
)

// Replies produced by the router itself
const (
	ReplyClarifyCity = "Please specify a city for the weather query."
	ReplyDateFormat  = "Today is %s."
)

// Date rule. Phrasal patterns only; a bare "today" inside a longer sentence
// is not enough to claim the Date intent.
const datePattern = `(?i)` +
	`\bwhat(?:'s|’s|\s+is)\s+(?:the\s+)?(?:today|date|day)\b` +
	`|\bwhat\s+(?:date|day)\b` +
	`|\bcurrent\s+(?:date|day)\b` +
	`|\btoday(?:'s|’s)\s+date\b` +
	`|\bdate\s+today\b` +
	`|\bwhat\s+time\s+is\s+it\b` +
	`|\bwhat(?:'s|’s|\s+is)\s+the\s+time\b` +
	`|^\s*(?:today|date|day|time)\s*[?.!]*\s*$`

// Bare date tokens. They claim the Date intent only when no weather keyword
// is present, so "rain today in Tokyo" stays a weather query.
const dateTokenPattern = `(?i)\b(?:today|date|day|time)\b`

// Weather rule, whole words only.
const weatherPattern = `(?i)\b(?:weather|temperature|forecast|rain|snow|sunny|cloudy)\b`

// City extraction
const (
	cityPattern         = `(?i)\b(?:in|for)\s+([a-zA-Z\s]+)`
	trailingPunctuation = `[?.!,]+$`
)

// noiseWords convey time or politeness rather than a place.
var noiseWords = map[string]struct{}{
	"today":     {},
	"now":       {},
	"please":    {},
	"right":     {},
	"currently": {},
	"tomorrow":  {},
	"this":      {},
	"week":      {},
	"tonight":   {},
}
