package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var (
	// ErrMissingWeatherKey is returned when no OpenWeather API key is configured.
	ErrMissingWeatherKey = errors.New("weather api key is not set")

	// ErrNoLLMProviders is returned when no enabled LLM provider has an API key.
	ErrNoLLMProviders = errors.New("no usable LLM provider configured")
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Collaborators
	Clock   ClockConfig
	Weather WeatherConfig
	Cache   CacheConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Chat surfaces
	Telegram TelegramConfig
	Tunnel   TunnelConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	PerMin int
}

type ClockConfig struct {
	Timezone string
}

// WeatherConfig configures the OpenWeather client.
type WeatherConfig struct {
	APIKey          string
	BaseURL         string
	Units           string
	Timeout         time.Duration
	RateLimitPerMin int
}

// CacheConfig configures the weather reply cache.
type CacheConfig struct {
	Backend string // memory | redis | none
	Size    int
	TTL     time.Duration
	Redis   RedisConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type TelegramConfig struct {
	BotToken    string
	WebhookURL  string
	SecretToken string
}

type TunnelConfig struct {
	Enabled  bool
	NgrokAPI string
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
	Temperature     float64          `yaml:"temperature"`
	MaxTokens       int              `yaml:"max_tokens"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/weather-ai-bot/
// unless path points to a file.
func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/weather-ai-bot/")
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	cfg.Clock.Timezone = v.GetString("clock.timezone")

	// Weather
	cfg.Weather.APIKey = expandEnvVar(v, v.GetString("weather.api_key"))
	if key := v.GetString("openweather_api_key"); key != "" {
		cfg.Weather.APIKey = key
	}
	cfg.Weather.BaseURL = v.GetString("weather.base_url")
	cfg.Weather.Units = v.GetString("weather.units")
	cfg.Weather.Timeout = v.GetDuration("weather.timeout")
	cfg.Weather.RateLimitPerMin = v.GetInt("weather.rate_limit_per_min")

	cfg.Cache.Backend = v.GetString("cache.backend")
	cfg.Cache.Size = v.GetInt("cache.size")
	cfg.Cache.TTL = v.GetDuration("cache.ttl")
	cfg.Cache.Redis.Addr = v.GetString("cache.redis.addr")
	cfg.Cache.Redis.Password = expandEnvVar(v, v.GetString("cache.redis.password"))
	cfg.Cache.Redis.DB = v.GetInt("cache.redis.db")

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = v.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = v.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = v.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = v.GetString("llm.max_total_timeout")
	cfg.LLM.Temperature = v.GetFloat64("llm.temperature")
	cfg.LLM.MaxTokens = v.GetInt("llm.max_tokens")

	if providersList, ok := v.Get("llm.providers").([]interface{}); ok {
		for _, p := range providersList {
			providerMap, ok := p.(map[string]interface{})
			if !ok {
				continue
			}
			cfg.LLM.Providers = append(cfg.LLM.Providers, ProviderConfig{
				Name:     getStringFromMap(providerMap, "name"),
				Enabled:  getBoolFromMap(providerMap, "enabled"),
				Priority: getIntFromMap(providerMap, "priority"),
				APIKey:   expandEnvVar(v, getStringFromMap(providerMap, "api_key")),
				BaseURL:  getStringFromMap(providerMap, "base_url"),
				Model:    getStringFromMap(providerMap, "model"),
				Timeout:  getStringFromMap(providerMap, "timeout"),
			})
		}
	}

	// Chat surfaces
	cfg.Telegram.BotToken = v.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = v.GetString("telegram.webhook_url")
	cfg.Telegram.SecretToken = expandEnvVar(v, v.GetString("telegram.secret_token"))
	if tgToken := v.GetString("telegram_bot_token"); tgToken != "" {
		cfg.Telegram.BotToken = tgToken
	}
	cfg.Tunnel.Enabled = v.GetBool("tunnel.enabled")
	cfg.Tunnel.NgrokAPI = v.GetString("tunnel.ngrok_api")

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("rate_limit.per_min", 60)

	v.SetDefault("weather.api_key", "${OPENWEATHER_API_KEY}")
	v.SetDefault("weather.base_url", "https://api.openweathermap.org/data/2.5")
	v.SetDefault("weather.units", "metric")
	v.SetDefault("weather.timeout", "10s")
	v.SetDefault("weather.rate_limit_per_min", 0)

	v.SetDefault("cache.backend", "memory")
	v.SetDefault("cache.size", 256)
	v.SetDefault("cache.ttl", "10m")
	v.SetDefault("cache.redis.addr", "localhost:6379")

	// LLM defaults
	v.SetDefault("llm.providers", []interface{}{
		map[string]interface{}{
			"name":     "gemini",
			"enabled":  true,
			"priority": 1,
			"api_key":  "${GOOGLE_API_KEY}",
			"model":    "gemini-2.0-flash",
			"timeout":  "30s",
		},
	})
	v.SetDefault("llm.fallback_enabled", true)
	v.SetDefault("llm.retry_attempts", 2)
	v.SetDefault("llm.retry_delay", "1s")
	v.SetDefault("llm.max_total_timeout", "60s")
	v.SetDefault("llm.temperature", 0.7)

	v.SetDefault("tunnel.ngrok_api", "http://localhost:4040")
}

// Validate checks that every collaborator can be built. It is called once at
// startup so a misconfigured process never serves a request.
func (c *Config) Validate() error {
	if c.Weather.APIKey == "" {
		return fmt.Errorf("%w: set OPENWEATHER_API_KEY or weather.api_key", ErrMissingWeatherKey)
	}
	if err := validateLLMConfig(&c.LLM); err != nil {
		return err
	}
	switch c.Cache.Backend {
	case "", "none", "memory", "redis":
	default:
		return fmt.Errorf("cache: unknown backend %q", c.Cache.Backend)
	}
	switch c.Weather.Units {
	case "", "metric", "imperial", "standard":
	default:
		return fmt.Errorf("weather: unknown units %q", c.Weather.Units)
	}
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(v *viper.Viper, value string) string {
	if !strings.HasPrefix(value, "${") || !strings.HasSuffix(value, "}") {
		return value
	}

	envVar := value[2 : len(value)-1]
	if envValue := v.GetString(envVar); envValue != "" {
		return envValue
	}
	if envValue := v.GetString(strings.ToLower(envVar)); envValue != "" {
		return envValue
	}
	return os.Getenv(envVar)
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	if len(cfg.Providers) == 0 {
		return fmt.Errorf("%w: add an llm.providers section", ErrNoLLMProviders)
	}

	usable := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}
		if !provider.Enabled {
			continue
		}
		if provider.Priority <= 0 {
			return fmt.Errorf("provider %s: priority must be positive", provider.Name)
		}
		if priorityMap[provider.Priority] {
			return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
		}
		priorityMap[provider.Priority] = true

		if provider.APIKey != "" {
			usable++
		}
	}

	if usable == 0 {
		return fmt.Errorf("%w: set GOOGLE_API_KEY or a provider api_key", ErrNoLLMProviders)
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		switch n := val.(type) {
		case int:
			return n
		case int64:
			return int(n)
		case float64:
			return int(n)
		}
	}
	return 0
}
