package http

import (
	"html/template"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/yuin/goldmark"

	"weather-ai-bot/internal/router"
	"weather-ai-bot/pkg/log"
)

type handler struct {
	l        log.Logger
	router   router.Router
	md       goldmark.Markdown
	page     *template.Template
	upgrader websocket.Upgrader
}

// New creates the HTTP chat handler.
func New(l log.Logger, r router.Router) *handler {
	return &handler{
		l:      l,
		router: r,
		md:     goldmark.New(),
		page:   template.Must(template.New("index").Parse(indexPage)),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}
