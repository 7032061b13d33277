package openweather

import "time"

const (
	// DefaultBaseURL is the OpenWeather data API root
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 10 * time.Second

	UnitsMetric   = "metric"
	UnitsImperial = "imperial"
	UnitsStandard = "standard"
)
