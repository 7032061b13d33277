package http

import (
	"html/template"
	"strings"
	"time"

	"weather-ai-bot/pkg/response"
)

const maxMessageLen = 2000

// maxFrameBytes bounds a whole socket frame: the message in UTF-8 plus JSON framing.
const maxFrameBytes = maxMessageLen*4 + 256

// --- Request DTOs ---

type chatReq struct {
	Message string `json:"message" form:"message"`
}

func (r chatReq) validate() error {
	if strings.TrimSpace(r.Message) == "" {
		return ErrEmptyMessage
	}
	if len(r.Message) > maxMessageLen {
		return ErrMessageTooLong
	}
	return nil
}

// --- Response DTOs ---

type chatResp struct {
	Reply     string            `json:"reply"`
	RequestID string            `json:"request_id"`
	CreatedAt response.DateTime `json:"created_at"`
}

func newChatResp(reply, requestID string) chatResp {
	return chatResp{
		Reply:     reply,
		RequestID: requestID,
		CreatedAt: response.DateTime(time.Now()),
	}
}

// --- Web socket frames ---

const (
	frameMessage = "message"
	frameReply   = "reply"
	frameError   = "error"
)

type wsMessage struct {
	Type    string `json:"type"`
	Content string `json:"content"`
}

// --- Web form ---

type pageData struct {
	Message string
	Reply   template.HTML
	Error   string
}
