package usecase

import (
	"time"

	"weather-ai-bot/internal/weather"
	"weather-ai-bot/internal/weather/repository"
	"weather-ai-bot/pkg/log"
	"weather-ai-bot/pkg/openweather"
)

type implUseCase struct {
	l        log.Logger
	client   openweather.IOpenWeather
	cache    repository.Cache
	cacheTTL time.Duration
}

// New creates a new weather UseCase. cache may be nil to disable caching.
func New(l log.Logger, client openweather.IOpenWeather, cache repository.Cache, cacheTTL time.Duration) weather.UseCase {
	if l == nil {
		l = log.NewNop()
	}
	return &implUseCase{
		l:        l,
		client:   client,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}
