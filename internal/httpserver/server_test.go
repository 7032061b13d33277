package httpserver

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "weather-ai-bot/docs"
	"weather-ai-bot/pkg/log"
)

type stubRouter struct{}

func (stubRouter) Route(ctx context.Context, utterance string) string {
	return "Today is Monday, March 03, 2025."
}

type stubTelegram struct{ called bool }

func (s *stubTelegram) HandleWebhook(c *gin.Context) {
	s.called = true
	c.Status(http.StatusOK)
}

func newTestServer(t *testing.T, tg *stubTelegram) *HTTPServer {
	t.Helper()
	cfg := Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "test",
		Router:      stubRouter{},
	}
	if tg != nil {
		cfg.TelegramHandler = tg
	}
	srv, err := New(log.NewNop(), cfg)
	require.NoError(t, err)
	return srv
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name   string
		logger log.Logger
		cfg    Config
	}{
		{name: "no logger", cfg: Config{Port: 1, Mode: gin.TestMode, Router: stubRouter{}}},
		{name: "no mode", logger: log.NewNop(), cfg: Config{Port: 1, Router: stubRouter{}}},
		{name: "no port", logger: log.NewNop(), cfg: Config{Mode: gin.TestMode, Router: stubRouter{}}},
		{name: "no router", logger: log.NewNop(), cfg: Config{Port: 1, Mode: gin.TestMode}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.logger, tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestSystemRoutes(t *testing.T) {
	srv := newTestServer(t, nil)

	for _, path := range []string{"/health", "/ready", "/live", "/metrics", "/swagger/doc.json"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusOK, w.Code)
		})
	}
}

func TestChatRouteAndRequestID(t *testing.T) {
	srv := newTestServer(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/chat", strings.NewReader(`{"message":"what day is it"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Today is Monday, March 03, 2025.")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestTelegramRoute(t *testing.T) {
	srv := newTestServer(t, nil)
	w := httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	tg := &stubTelegram{}
	srv = newTestServer(t, tg)
	w = httptest.NewRecorder()
	srv.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/webhook/telegram", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, tg.called)
}

func TestRun_GracefulShutdown(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	srv := newTestServer(t, nil)
	srv.port = port

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	assert.Eventually(t, func() bool {
		resp, err := http.Get("http://127.0.0.1:" + strconv.Itoa(port) + "/live")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
