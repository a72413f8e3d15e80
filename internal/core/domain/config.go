package domain

import "sort"

// Built-in config names, one per OVHcloud API region.
const (
	ConfigEU = "OVH-EU"
	ConfigCA = "OVH-CA"

	// DefaultConfigName is selected until the user switches config.
	DefaultConfigName = ConfigEU
)

// Config describes an API endpoint the CLI can target.
type Config struct {
	// Name identifies the config (e.g., "OVH-EU").
	Name string `json:"name" yaml:"name"`

	// EndpointURL is the API v6 base URL all requests are resolved against.
	EndpointURL string `json:"endpoint_url" yaml:"endpoint_url"`

	// CreateTokenURL is the page where users generate API keys.
	CreateTokenURL string `json:"create_token_url" yaml:"create_token_url"`
}

// RuntimeContext is the per-config state stored alongside credentials.
type RuntimeContext struct {
	ServiceName string `json:"service_name,omitempty" yaml:"service_name,omitempty"`
}

// ConfigView is a config as displayed by the config commands.
type ConfigView struct {
	Config   `yaml:",inline"`
	Context  *RuntimeContext `json:"context,omitempty" yaml:"context,omitempty"`
	Selected bool            `json:"selected" yaml:"selected"`
}

// DefaultConfigs returns the built-in regional configs keyed by name.
func DefaultConfigs() map[string]Config {
	return map[string]Config{
		ConfigEU: {
			Name:           ConfigEU,
			EndpointURL:    "https://eu.api.ovh.com/1.0",
			CreateTokenURL: "https://eu.api.ovh.com/createToken/",
		},
		ConfigCA: {
			Name:           ConfigCA,
			EndpointURL:    "https://ca.api.ovh.com/1.0",
			CreateTokenURL: "https://ca.api.ovh.com/createToken/",
		},
	}
}

// ConfigNames returns the built-in config names in a stable order.
func ConfigNames() []string {
	configs := DefaultConfigs()
	names := make([]string, 0, len(configs))
	for name := range configs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
