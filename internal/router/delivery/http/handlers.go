package http

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"weather-ai-bot/internal/middleware"
	"weather-ai-bot/pkg/response"
)

// Index renders the empty chat form.
func (h *handler) Index(c *gin.Context) {
	h.render(c, http.StatusOK, pageData{})
}

// Submit routes the form message and renders the reply as HTML.
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processFormReq(c)
	if err != nil {
		h.render(c, http.StatusBadRequest, pageData{Message: req.Message, Error: err.Error()})
		return
	}

	reply := h.router.Route(ctx, req.Message)
	h.render(c, http.StatusOK, pageData{Message: req.Message, Reply: h.toHTML(reply)})
}

// Chat godoc
// @Summary     Send one utterance to the bot
// @Description Classifies the message as a date, weather or knowledge question and returns the bot's reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Utterance"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Router      /api/v1/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	reply := h.router.Route(ctx, req.Message)
	response.OK(c, newChatResp(reply, middleware.GetRequestID(c)))
}

func (h *handler) render(c *gin.Context, status int, data pageData) {
	var buf bytes.Buffer
	if err := h.page.Execute(&buf, data); err != nil {
		h.l.Errorf(c.Request.Context(), "http.render: %v", err)
		c.String(http.StatusInternalServerError, response.DefaultErrorMessage)
		return
	}
	c.Data(status, "text/html; charset=utf-8", buf.Bytes())
}

// toHTML renders a Markdown reply. Raw HTML in the reply is not passed through.
func (h *handler) toHTML(reply string) template.HTML {
	var buf bytes.Buffer
	if err := h.md.Convert([]byte(reply), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(reply))
	}
	return template.HTML(buf.String())
}
