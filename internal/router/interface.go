package router

import (
	"context"
	"time"
)

// Router turns one utterance into one reply.
type Router interface {
	Route(ctx context.Context, utterance string) string
}

// WeatherLookup returns a formatted sentence about current conditions in city,
// or a formatted apology. Failures are encoded in the returned string.
type WeatherLookup interface {
	Fetch(ctx context.Context, city string) string
}

// KnowledgeAnswer answers an open-domain question. referenceDate grounds
// relative-date reasoning. Failures are encoded in the returned string.
type KnowledgeAnswer interface {
	Ask(ctx context.Context, utterance string, referenceDate string) string
}

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Tracer observes routing decisions.
type Tracer interface {
	Trace(ctx context.Context, t Trace)
}

// TracerFunc adapts a function to Tracer.
type TracerFunc func(ctx context.Context, t Trace)

// Trace calls f(ctx, t).
func (f TracerFunc) Trace(ctx context.Context, t Trace) {
	f(ctx, t)
}
