package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

func newClient(cfg Config) *client {
	c := &client{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		units:      cfg.Units,
		httpClient: cfg.HTTPClient,
	}
	if cfg.RateLimitPerMin > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RateLimitPerMin)), cfg.RateLimitPerMin)
	}
	return c
}

// CurrentWeather calls GET /weather?q=<city>
func (c *client) CurrentWeather(ctx context.Context, city string) (*Current, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrEmptyCity
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("openweather: rate limit wait: %w", err)
		}
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", c.units)
	endpoint := c.baseURL + "/weather?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("openweather: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweather: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s", ErrCityNotFound, city)
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	default:
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr errorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return nil, fmt.Errorf("openweather: API error %d: %s", resp.StatusCode, apiErr.Message)
		}
		return nil, fmt.Errorf("openweather: API error %d", resp.StatusCode)
	}

	var data weatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("openweather: failed to decode response: %w", err)
	}
	if len(data.Weather) == 0 {
		return nil, fmt.Errorf("openweather: response has no weather conditions")
	}

	return &Current{
		City:        data.Name,
		Description: data.Weather[0].Description,
		Temperature: data.Main.Temp,
		FeelsLike:   data.Main.FeelsLike,
		Humidity:    data.Main.Humidity,
	}, nil
}

// Units returns the configured unit system
func (c *client) Units() string {
	return c.units
}
