package openweather

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// Config holds OpenWeather client configuration
type Config struct {
	APIKey          string
	BaseURL         string
	Units           string
	HTTPClient      *http.Client
	RateLimitPerMin int
}

// Validate validates the configuration and fills defaults
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("openweather: APIKey is required")
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	switch c.Units {
	case "":
		c.Units = UnitsMetric
	case UnitsMetric, UnitsImperial, UnitsStandard:
	default:
		return fmt.Errorf("openweather: unknown units %q", c.Units)
	}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: DefaultTimeout}
	}
	return nil
}

// Current is the subset of a current weather reading the bot reports.
type Current struct {
	City        string
	Description string
	Temperature float64
	FeelsLike   float64
	Humidity    int
}

type client struct {
	apiKey     string
	baseURL    string
	units      string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Wire types for /weather.
type weatherResponse struct {
	Name    string `json:"name"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
}

type errorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}
