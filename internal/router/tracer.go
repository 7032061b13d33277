package router

import (
	"context"

	pkgLog "weather-ai-bot/pkg/log"
)

// NewLogTracer returns a Tracer that writes one info entry per decision.
func NewLogTracer(l pkgLog.Logger) Tracer {
	return TracerFunc(func(ctx context.Context, t Trace) {
		if t.City != "" {
			l.Info(ctx, "route", "intent", t.Intent.String(), "branch", string(t.Branch), "city", t.City)
			return
		}
		l.Info(ctx, "route", "intent", t.Intent.String(), "branch", string(t.Branch))
	})
}

// MultiTracer fans a decision out to every non-nil tracer in order.
func MultiTracer(tracers ...Tracer) Tracer {
	var active []Tracer
	for _, t := range tracers {
		if t != nil {
			active = append(active, t)
		}
	}
	return TracerFunc(func(ctx context.Context, t Trace) {
		for _, tr := range active {
			tr.Trace(ctx, t)
		}
	})
}
