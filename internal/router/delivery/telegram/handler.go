package telegram

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	pkgLog "weather-ai-bot/pkg/log"
	pkgResponse "weather-ai-bot/pkg/response"
	pkgTelegram "weather-ai-bot/pkg/telegram"
)

// HandleWebhook is the Gin handler for incoming Telegram webhook updates.
// It responds with HTTP 200 immediately and routes the message in a background
// goroutine so a slow LLM call never trips Telegram's webhook timeout.
func (h *handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if h.secretToken != "" {
		if err := validateSecretToken(h.secretToken, c.GetHeader(headerSecretToken)); err != nil {
			h.l.Warnf(ctx, "telegram handler: rejected update from %s: %v", c.ClientIP(), err)
			pkgResponse.Unauthorized(c)
			return
		}
	}

	var update pkgTelegram.Update
	if err := c.ShouldBindJSON(&update); err != nil {
		h.l.Errorf(ctx, "telegram handler: failed to parse update: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	// Ignore non-text updates (stickers, channel posts, edits)
	if update.Message == nil || update.Message.Chat == nil || strings.TrimSpace(update.Message.Text) == "" {
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
		return
	}

	// Snapshot the message before spawning goroutine to avoid data races on gin context
	msg := update.Message
	requestID := pkgLog.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	go func() {
		// Detach from the HTTP request context, which is cancelled after the response
		bgCtx, cancel := context.WithTimeout(pkgLog.WithRequestID(context.Background(), requestID), h.timeout)
		defer cancel()

		if err := h.processMessage(bgCtx, msg); err != nil {
			h.l.Errorf(bgCtx, "telegram handler: background processMessage failed: %v", err)
		}
	}()

	pkgResponse.OK(c, map[string]string{"status": "accepted"})
}

// processMessage answers a single Telegram message.
func (h *handler) processMessage(ctx context.Context, msg *pkgTelegram.Message) error {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	switch strings.ToLower(strings.Fields(text)[0]) {
	case commandStart:
		return h.bot.SendMessage(ctx, chatID, replyWelcome)
	case commandHelp:
		return h.bot.SendMessage(ctx, chatID, replyHelp)
	}

	if err := h.bot.SendChatAction(ctx, chatID, pkgTelegram.ActionTyping); err != nil {
		h.l.Warnf(ctx, "telegram handler: failed to send typing action: %v", err)
	}

	reply := h.router.Route(ctx, text)
	for _, chunk := range splitMessage(reply, maxMessageRunes) {
		if err := h.bot.SendMessage(ctx, chatID, chunk); err != nil {
			return err
		}
	}
	return nil
}
