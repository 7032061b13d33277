package openweather

import "errors"

var (
	// ErrCityNotFound is returned when OpenWeather does not know the city.
	ErrCityNotFound = errors.New("openweather: city not found")

	// ErrUnauthorized is returned when the API key is rejected.
	ErrUnauthorized = errors.New("openweather: invalid api key")

	// ErrEmptyCity is returned when CurrentWeather is called without a city.
	ErrEmptyCity = errors.New("openweather: city is required")
)
