package knowledge

const (
	// SystemPromptFormat is filled with the reference date.
	SystemPromptFormat = "You are a helpful assistant answering general knowledge questions. " +
		"Assume today's date is %s.\nRespond clearly and concisely."

	// UserPromptFormat is filled with the user's utterance.
	UserPromptFormat = "User asked: \"%s\""

	// ReplyApology is returned when generation fails or comes back empty.
	ReplyApology = "Sorry, I couldn't come up with an answer right now. Please try again later."
)
