package metrics

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"weather-ai-bot/internal/router"
)

var (
	RouteCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherbot_routes_total",
			Help: "Total number of routed utterances by intent and branch",
		},
		[]string{"intent", "branch"},
	)

	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weatherbot_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "weatherbot_http_request_duration_seconds",
			Help: "HTTP request duration in seconds",
		},
		[]string{"method", "endpoint"},
	)

	ActiveSockets = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "weatherbot_active_websockets",
			Help: "Number of open chat web sockets",
		},
	)
)

// Tracer counts every routing decision.
func Tracer() router.Tracer {
	return router.TracerFunc(func(_ context.Context, t router.Trace) {
		RouteCount.WithLabelValues(t.Intent.String(), string(t.Branch)).Inc()
	})
}

// Middleware records request count and latency per route template.
func Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}
		RequestCount.WithLabelValues(c.Request.Method, endpoint, strconv.Itoa(c.Writer.Status())).Inc()
		RequestDuration.WithLabelValues(c.Request.Method, endpoint).Observe(time.Since(start).Seconds())
	}
}
