package telegram

import "context"

// IBot is the subset of the Bot API the chat surface uses.
type IBot interface {
	SetWebhook(ctx context.Context, webhookURL string) error
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendChatAction(ctx context.Context, chatID int64, action string) error
}

// ActionTyping shows the "typing..." indicator.
const ActionTyping = "typing"
