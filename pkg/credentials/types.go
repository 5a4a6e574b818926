package credentials

// Credentials represents the stored API credentials in credentials.toml.
//
// Example TOML:
//
//	version = 0
//	default = "weatherapi"
//
//	[providers.accuweather.accuweather]
//	api_key = "abc"
//
//	[providers.weatherapi.weatherapi]
//	api_key = "xyz"
//
// The outer map key is the provider id, the inner key is the alias. An
// alias distinguishes multiple credentials for the same provider; today
// the CLI always uses the provider id as its own alias, but the file
// format allows more.
type Credentials struct {
	Version   int                          `toml:"version"`
	Default   string                       `toml:"default,omitempty"`
	Providers map[string]map[string]Record `toml:"providers"`
}

// Record holds the API key for a single (provider, alias) pair.
type Record struct {
	APIKey string `toml:"api_key"`
}
