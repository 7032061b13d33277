package main

import (
	"context"
	"fmt"

	"weather-ai-bot/config"
	"weather-ai-bot/internal/knowledge"
	knowledgeUC "weather-ai-bot/internal/knowledge/usecase"
	"weather-ai-bot/internal/metrics"
	"weather-ai-bot/internal/router"
	"weather-ai-bot/internal/weather"
	"weather-ai-bot/internal/weather/repository"
	memoryCache "weather-ai-bot/internal/weather/repository/memory"
	redisCache "weather-ai-bot/internal/weather/repository/redis"
	weatherUC "weather-ai-bot/internal/weather/usecase"
	"weather-ai-bot/pkg/datemath"
	"weather-ai-bot/pkg/llmprovider"
	"weather-ai-bot/pkg/log"
	"weather-ai-bot/pkg/openweather"
)

const (
	cacheBackendMemory = "memory"
	cacheBackendRedis  = "redis"
	cacheBackendNone   = "none"
)

// app holds the collaborators shared by every sub-command.
type app struct {
	cfg    *config.Config
	l      log.Logger
	router router.Router

	closers []func() error
}

// bootstrap loads and validates configuration, then builds the router.
// Interactive modes only log warnings unless --verbose is set.
func bootstrap(ctx context.Context, opts *rootOptions, interactive bool) (*app, error) {
	// 1. Configuration
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// 2. Logger
	level := cfg.Logger.Level
	if interactive && !opts.verbose {
		level = "warn"
	}
	logger := log.Init(log.ZapConfig{
		Level:        level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	a := &app{cfg: cfg, l: logger}

	r, err := a.buildRouter(ctx)
	if err != nil {
		a.close()
		return nil, err
	}
	a.router = r

	return a, nil
}

func (a *app) buildRouter(ctx context.Context) (router.Router, error) {
	clock, err := datemath.NewClock(a.cfg.Clock.Timezone)
	if err != nil {
		a.l.Warnf(ctx, "Invalid timezone %q, falling back to local time: %v", a.cfg.Clock.Timezone, err)
		clock = datemath.SystemClock()
	}

	weatherLookup, err := a.buildWeather(ctx)
	if err != nil {
		return nil, err
	}

	knowledgeAnswer, err := a.buildKnowledge(ctx)
	if err != nil {
		return nil, err
	}

	r, err := router.New(router.Config{
		Weather:   weatherLookup,
		Knowledge: knowledgeAnswer,
		Clock:     clock,
		Tracer:    router.MultiTracer(router.NewLogTracer(a.l), metrics.Tracer()),
		Logger:    a.l,
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (a *app) buildWeather(ctx context.Context) (weather.UseCase, error) {
	client, err := openweather.New(openweather.Config{
		APIKey:          a.cfg.Weather.APIKey,
		BaseURL:         a.cfg.Weather.BaseURL,
		Units:           a.cfg.Weather.Units,
		HTTPClient:      httpClient(a.cfg.Weather.Timeout),
		RateLimitPerMin: a.cfg.Weather.RateLimitPerMin,
	})
	if err != nil {
		return nil, fmt.Errorf("openweather: %w", err)
	}

	var cache repository.Cache
	switch a.cfg.Cache.Backend {
	case cacheBackendRedis:
		c, closeFn, err := redisCache.New(ctx, redisCache.Config{
			Addr:     a.cfg.Cache.Redis.Addr,
			Password: a.cfg.Cache.Redis.Password,
			DB:       a.cfg.Cache.Redis.DB,
			TTL:      a.cfg.Cache.TTL,
		})
		if err != nil {
			a.l.Warnf(ctx, "Redis cache not available, falling back to memory: %v", err)
			cache = memoryCache.New(a.cfg.Cache.Size, a.cfg.Cache.TTL)
			break
		}
		a.closers = append(a.closers, closeFn)
		cache = c
		a.l.Infof(ctx, "Weather cache: redis at %s", a.cfg.Cache.Redis.Addr)
	case cacheBackendNone:
		a.l.Info(ctx, "Weather cache disabled")
	default:
		cache = memoryCache.New(a.cfg.Cache.Size, a.cfg.Cache.TTL)
	}

	return weatherUC.New(a.l, client, cache, a.cfg.Cache.TTL), nil
}

func (a *app) buildKnowledge(ctx context.Context) (knowledge.UseCase, error) {
	providers, err := llmprovider.InitializeProviders(&a.cfg.LLM, a.l)
	if err != nil {
		return nil, fmt.Errorf("llm providers: %w", err)
	}

	manager, err := llmprovider.NewManagerFromConfig(&a.cfg.LLM, providers, a.l)
	if err != nil {
		return nil, err
	}
	a.l.Infof(ctx, "LLM providers: %v", manager.Providers())

	return knowledgeUC.New(a.l, manager, knowledgeUC.Options{
		Temperature: a.cfg.LLM.Temperature,
		MaxTokens:   a.cfg.LLM.MaxTokens,
	}), nil
}

func (a *app) close() {
	for _, fn := range a.closers {
		if err := fn(); err != nil {
			a.l.Warnf(context.Background(), "close: %v", err)
		}
	}
}
