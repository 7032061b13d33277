package http

import (
	"github.com/gin-gonic/gin"

	"weather-ai-bot/internal/middleware"
)

// RegisterRoutes mounts the web form at /, the JSON API under /api/v1 and the
// chat socket at /ws.
func RegisterRoutes(r gin.IRouter, h *handler, mw middleware.Middleware) {
	r.GET("/", h.Index)
	r.POST("/", mw.RateLimit(), h.Submit)
	r.GET("/ws", h.Socket(mw.Allow))

	api := r.Group("/api/v1")
	{
		api.POST("/chat", mw.RateLimit(), h.Chat)
	}
}
