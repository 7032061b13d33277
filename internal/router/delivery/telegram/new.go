package telegram

import (
	"time"

	"github.com/gin-gonic/gin"

	"weather-ai-bot/internal/router"
	pkgLog "weather-ai-bot/pkg/log"
	pkgTelegram "weather-ai-bot/pkg/telegram"
)

const defaultProcessTimeout = 60 * time.Second

// Handler is the interface for the Telegram delivery handler.
type Handler interface {
	HandleWebhook(c *gin.Context)
}

type handler struct {
	l           pkgLog.Logger
	bot         pkgTelegram.IBot
	router      router.Router
	secretToken string
	timeout     time.Duration
}

// New creates a new Telegram delivery handler. When secretToken is set, updates
// without a matching X-Telegram-Bot-Api-Secret-Token header are rejected.
func New(l pkgLog.Logger, bot pkgTelegram.IBot, r router.Router, secretToken string) Handler {
	return &handler{
		l:           l,
		bot:         bot,
		router:      r,
		secretToken: secretToken,
		timeout:     defaultProcessTimeout,
	}
}
