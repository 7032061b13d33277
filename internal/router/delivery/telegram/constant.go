package telegram

const headerSecretToken = "X-Telegram-Bot-Api-Secret-Token"

// maxMessageRunes is the sendMessage text limit.
const maxMessageRunes = 4096

const (
	commandStart = "/start"
	commandHelp  = "/help"

	replyWelcome = "👋 Welcome to Weather + AI Bot!\n\n" +
		"Ask me:\n" +
		"• what's the date today\n" +
		"• the weather in a city, e.g. \"What's the weather in Paris?\"\n" +
		"• any general knowledge question"

	replyHelp = "Send one message per question. Weather questions need a city, " +
		"for example \"Is it going to rain in Tokyo?\"."
)
