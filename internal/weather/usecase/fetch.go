package usecase

import (
	"context"
	"fmt"
	"strings"

	"weather-ai-bot/internal/weather"
	"weather-ai-bot/pkg/openweather"
)

// Fetch looks up the current weather for city and renders it as a sentence.
func (uc *implUseCase) Fetch(ctx context.Context, city string) string {
	key := cacheKey(city, uc.client.Units())

	if uc.cache != nil {
		reply, ok, err := uc.cache.Get(ctx, key)
		if err != nil {
			uc.l.Warnf(ctx, "weather.Fetch: cache get %q: %v", key, err)
		} else if ok {
			uc.l.Debugf(ctx, "weather.Fetch: cache hit for %q", key)
			return reply
		}
	}

	cur, err := uc.client.CurrentWeather(ctx, city)
	if err != nil {
		uc.l.Warnf(ctx, "weather.Fetch: lookup %q failed: %v", city, err)
		return fmt.Sprintf(weather.ApologyFormat, city)
	}

	reply := fmt.Sprintf(weather.ReplyFormat, city, cur.Description, cur.Temperature, unitSymbol(uc.client.Units()))

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, reply, uc.cacheTTL); err != nil {
			uc.l.Warnf(ctx, "weather.Fetch: cache set %q: %v", key, err)
		}
	}

	return reply
}

func cacheKey(city, units string) string {
	return strings.ToLower(strings.TrimSpace(city)) + "|" + units
}

func unitSymbol(units string) string {
	switch units {
	case openweather.UnitsImperial:
		return "°F"
	case openweather.UnitsStandard:
		return " K"
	default:
		return "°C"
	}
}
