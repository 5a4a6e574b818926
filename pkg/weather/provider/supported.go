package provider

import (
	"fmt"
	"slices"

	"github.com/zoryamba/wezza/pkg/weather/provider/accuweather"
	"github.com/zoryamba/wezza/pkg/weather/provider/weatherapi"
)

// Supported provider id constants
const (
	WeatherAPI  = "weatherapi"
	AccuWeather = "accuweather"
)

// SupportedProviders returns the list of all supported provider ids.
func SupportedProviders() []string {
	return []string{WeatherAPI, AccuWeather}
}

// IsSupported returns true if the given provider id is supported.
func IsSupported(id string) bool {
	return slices.Contains(SupportedProviders(), id)
}

// New creates a Provider client for the given provider id.
// Returns an error if the id is not recognized.
func New(id string, opts Options) (Provider, error) {
	switch id {
	case WeatherAPI:
		return weatherapi.New(opts.BaseURL, opts.Timeout), nil
	case AccuWeather:
		return accuweather.New(opts.BaseURL, opts.Timeout), nil
	default:
		return nil, fmt.Errorf("unknown provider id: %q (supported: %v)", id, SupportedProviders())
	}
}
