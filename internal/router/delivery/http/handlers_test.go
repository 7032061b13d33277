package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-ai-bot/internal/middleware"
	"weather-ai-bot/pkg/log"
	"weather-ai-bot/pkg/response"
)

type fakeRouter struct {
	mu    sync.Mutex
	reply string
	got   []string
}

func (f *fakeRouter) Route(ctx context.Context, utterance string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.got = append(f.got, utterance)
	if f.reply != "" {
		return f.reply
	}
	return "echo: " + utterance
}

func newTestEngine(r *fakeRouter) *gin.Engine {
	return newLimitedEngine(r, 0)
}

func newLimitedEngine(r *fakeRouter, perMin int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	e := gin.New()
	mw := middleware.New(log.NewNop(), perMin)
	e.Use(mw.RequestID())
	RegisterRoutes(e, New(log.NewNop(), r), mw)
	return e
}

func TestChat_OK(t *testing.T) {
	r := &fakeRouter{}
	e := newTestEngine(r)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"What's the weather in Paris?"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderRequestID, "req-1")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		ErrorCode int      `json:"error_code"`
		Data      chatResp `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 0, body.ErrorCode)
	assert.Equal(t, "echo: What's the weather in Paris?", body.Data.Reply)
	assert.Equal(t, "req-1", body.Data.RequestID)
	assert.Equal(t, []string{"What's the weather in Paris?"}, r.got)
}

func TestChat_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty message", body: `{"message":"   "}`},
		{name: "missing message", body: `{}`},
		{name: "invalid json", body: `{`},
		{name: "too long", body: `{"message":"` + strings.Repeat("a", maxMessageLen+1) + `"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := &fakeRouter{}
			e := newTestEngine(r)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			e.ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp response.Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, response.BadRequestErrorCode, resp.ErrorCode)
			assert.Empty(t, r.got)
		})
	}
}

func TestIndex(t *testing.T) {
	e := newTestEngine(&fakeRouter{})

	w := httptest.NewRecorder()
	e.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), `<form method="POST" action="/">`)
}

func TestSubmit_RendersMarkdown(t *testing.T) {
	e := newTestEngine(&fakeRouter{reply: "**Paris** is the capital. <script>alert(1)</script>"})

	form := url.Values{"message": {"capital of France?"}}
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<strong>Paris</strong>")
	assert.NotContains(t, body, "<script>alert(1)</script>")
	assert.Contains(t, body, `value="capital of France?"`)
}

func TestSubmit_Empty(t *testing.T) {
	r := &fakeRouter{}
	e := newTestEngine(r)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("message="))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), ErrEmptyMessage.Error())
	assert.Empty(t, r.got)
}

func TestSocket(t *testing.T) {
	server := httptest.NewServer(newTestEngine(&fakeRouter{}))
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(wsMessage{Type: frameMessage, Content: "what day is it"}))
	var out wsMessage
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, wsMessage{Type: frameReply, Content: "echo: what day is it"}, out)

	require.NoError(t, conn.WriteJSON(wsMessage{Type: frameMessage, Content: " "}))
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, frameError, out.Type)

	require.NoError(t, conn.WriteJSON(wsMessage{Type: "ping"}))
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, frameError, out.Type)
}

func dialSocket(t *testing.T, e *gin.Engine) *websocket.Conn {
	t.Helper()
	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestSocket_MessageTooLong(t *testing.T) {
	r := &fakeRouter{}
	conn := dialSocket(t, newTestEngine(r))

	require.NoError(t, conn.WriteJSON(wsMessage{Type: frameMessage, Content: strings.Repeat("a", maxMessageLen+500)}))
	var out wsMessage
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, wsMessage{Type: frameError, Content: ErrMessageTooLong.Error()}, out)

	// A frame past the read limit closes the connection.
	require.NoError(t, conn.WriteJSON(wsMessage{Type: frameMessage, Content: strings.Repeat("a", 50000)}))
	assert.Error(t, conn.ReadJSON(&out))

	r.mu.Lock()
	assert.Empty(t, r.got)
	r.mu.Unlock()
}

func TestSocket_RateLimitedPerFrame(t *testing.T) {
	r := &fakeRouter{reply: "ok"}
	conn := dialSocket(t, newLimitedEngine(r, 1))

	var out wsMessage
	require.NoError(t, conn.WriteJSON(wsMessage{Type: frameMessage, Content: "who wrote Hamlet?"}))
	require.NoError(t, conn.ReadJSON(&out))
	assert.Equal(t, wsMessage{Type: frameReply, Content: "ok"}, out)

	for i := 0; i < 5; i++ {
		require.NoError(t, conn.WriteJSON(wsMessage{Type: frameMessage, Content: "who wrote Hamlet?"}))
		require.NoError(t, conn.ReadJSON(&out))
		assert.Equal(t, wsMessage{Type: frameError, Content: ErrRateLimited.Error()}, out)
	}

	r.mu.Lock()
	assert.Len(t, r.got, 1)
	r.mu.Unlock()
}
