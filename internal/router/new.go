package router

import (
	"errors"

	pkgLog "weather-ai-bot/pkg/log"
)

// Config is the dependency bag passed to New().
type Config struct {
	Weather   WeatherLookup
	Knowledge KnowledgeAnswer
	Clock     Clock
	Tracer    Tracer // optional
	Logger    pkgLog.Logger
}

// IntentRouter dispatches utterances to the date, weather or knowledge branch.
// It holds no mutable state and is safe for concurrent use.
type IntentRouter struct {
	weather   WeatherLookup
	knowledge KnowledgeAnswer
	clock     Clock
	tracer    Tracer
	l         pkgLog.Logger
}

// Ensure IntentRouter implements Router interface
var _ Router = (*IntentRouter)(nil)

// New creates a new IntentRouter.
func New(cfg Config) (*IntentRouter, error) {
	if cfg.Weather == nil {
		return nil, errors.New("router: weather lookup is required")
	}
	if cfg.Knowledge == nil {
		return nil, errors.New("router: knowledge answer is required")
	}
	if cfg.Clock == nil {
		return nil, errors.New("router: clock is required")
	}
	if cfg.Logger == nil {
		cfg.Logger = pkgLog.NewNop()
	}
	return &IntentRouter{
		weather:   cfg.Weather,
		knowledge: cfg.Knowledge,
		clock:     cfg.Clock,
		tracer:    cfg.Tracer,
		l:         cfg.Logger,
	}, nil
}
