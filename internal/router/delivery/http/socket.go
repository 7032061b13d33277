package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"weather-ai-bot/internal/metrics"
)

// Socket upgrades to a web socket and answers each message frame with one
// reply frame until the client disconnects. allow is consulted per frame with
// the client IP; a refused frame gets an error frame and is not routed.
func (h *handler) Socket(allow func(key string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		clientIP := c.ClientIP()

		conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.l.Warnf(ctx, "http.Socket: upgrade failed: %v", err)
			return
		}
		defer conn.Close()
		conn.SetReadLimit(maxFrameBytes)

		metrics.ActiveSockets.Inc()
		defer metrics.ActiveSockets.Dec()

		for {
			var msg wsMessage
			if err := conn.ReadJSON(&msg); err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
					h.l.Debugf(ctx, "http.Socket: read: %v", err)
				}
				return
			}

			out := wsMessage{Type: frameReply}
			if msg.Type != frameMessage {
				out = wsMessage{Type: frameError, Content: "unsupported frame type " + msg.Type}
			} else if err := (chatReq{Message: msg.Content}).validate(); err != nil {
				out = wsMessage{Type: frameError, Content: err.Error()}
			} else if err := allow(clientIP); err != nil {
				h.l.Warnf(ctx, "http.Socket: %v", err)
				out = wsMessage{Type: frameError, Content: ErrRateLimited.Error()}
			} else {
				out.Content = h.router.Route(ctx, msg.Content)
			}

			if err := conn.WriteJSON(out); err != nil {
				h.l.Debugf(ctx, "http.Socket: write: %v", err)
				return
			}
		}
	}
}
