package console

const (
	Banner  = "Welcome to Weather + AI Bot! Type 'exit' or 'quit' to stop."
	Prompt  = "> You: "
	Goodbye = "Goodbye!"

	replyPrefix = "< Bot: "
	commentMark = "#"

	FormatText = "text"
	FormatYAML = "yaml"
)
