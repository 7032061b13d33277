package openweather

import "context"

// IOpenWeather is the current weather lookup used by the weather usecase.
type IOpenWeather interface {
	// CurrentWeather returns the current conditions for a city name.
	CurrentWeather(ctx context.Context, city string) (*Current, error)

	// Units returns the unit system readings are expressed in.
	Units() string
}

// New creates a new OpenWeather client with the given configuration
func New(cfg Config) (IOpenWeather, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newClient(cfg), nil
}
