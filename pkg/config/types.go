package config

import (
	"fmt"
	"strconv"
)

// Config represents the persistent wezza configuration stored as
// config.toml in the .wezza/ directory. Credentials live in their own
// file; config.toml only carries tool settings.
type Config struct {
	Version     int            `toml:"version"`
	HTTP        HTTPConfig     `toml:"http"`
	WeatherAPI  ProviderConfig `toml:"weatherapi"`
	AccuWeather ProviderConfig `toml:"accuweather"`
}

// HTTPConfig holds settings shared by all provider clients.
type HTTPConfig struct {
	TimeoutSeconds uint `toml:"timeout_seconds,omitempty"`
}

// ProviderConfig holds per-provider endpoint settings. BaseURL is
// mainly useful for pointing a provider at a mock during development.
type ProviderConfig struct {
	BaseURL string `toml:"base_url,omitempty"`
}

// configKeyInfo maps a user-facing dotted key name to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

// configKeys is the authoritative map of all supported config keys.
// Keys use dotted notation matching the TOML section structure.
var configKeys = map[string]configKeyInfo{
	"http.timeout_seconds": {
		get: func(c *Config) string {
			if c.HTTP.TimeoutSeconds == 0 {
				return ""
			}
			return strconv.FormatUint(uint64(c.HTTP.TimeoutSeconds), 10)
		},
		set: func(c *Config, v string) error {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid value for http.timeout_seconds: %w", err)
			}
			c.HTTP.TimeoutSeconds = uint(n)
			return nil
		},
	},
	"weatherapi.base_url": {
		get: func(c *Config) string { return c.WeatherAPI.BaseURL },
		set: func(c *Config, v string) error { c.WeatherAPI.BaseURL = v; return nil },
	},
	"accuweather.base_url": {
		get: func(c *Config) string { return c.AccuWeather.BaseURL },
		set: func(c *Config, v string) error { c.AccuWeather.BaseURL = v; return nil },
	},
}
