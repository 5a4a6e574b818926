package config

// Default values for all settings. defaults.go is the single source of
// truth; both the Configer and viper defaults derive from it.
const (
	// DefaultHTTPTimeoutSeconds bounds each outbound provider request.
	DefaultHTTPTimeoutSeconds uint = 10
)

// NewDefaultConfig returns a Config populated with defaults. Provider
// base URLs default to empty, which means each client uses its own
// production endpoint.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		HTTP: HTTPConfig{
			TimeoutSeconds: DefaultHTTPTimeoutSeconds,
		},
	}
}
