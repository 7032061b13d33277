package router

// Intent represents the user's intention for a single utterance.
type Intent string

const (
	IntentDate      Intent = "DATE"
	IntentWeather   Intent = "WEATHER"
	IntentKnowledge Intent = "KNOWLEDGE"
)

func (i Intent) String() string {
	return string(i)
}

// Branch identifies the terminal branch a Route call took.
type Branch string

const (
	BranchDate      Branch = "date"
	BranchWeather   Branch = "weather"
	BranchClarify   Branch = "clarify"
	BranchKnowledge Branch = "knowledge"
)

// Trace describes one routing decision. It is handed to the Tracer and never
// influences the reply.
type Trace struct {
	Intent Intent
	Branch Branch
	City   string // set only for BranchWeather
}
