package driving

import "github.com/ovh/ovhdata-cli/internal/core/domain"

// ContextService manages the persisted CLI context: the selected config,
// the credentials and the service name stored for each config.
type ContextService interface {
	// UUID identifies this context. Session log files are grouped under it.
	UUID() string

	// CurrentConfig returns the selected config.
	CurrentConfig() domain.Config

	// Configs lists every known config, marking the selected one.
	Configs() []domain.ConfigView

	// Config returns a config by name with its runtime context.
	Config(name string) (*domain.ConfigView, error)

	// SetCurrentConfig selects a config by name.
	SetCurrentConfig(name string) (*domain.ConfigView, error)

	// Credentials returns the credentials stored for the current config.
	Credentials() (domain.Credentials, bool)

	// SaveCredentials stores credentials for the current config.
	SaveCredentials(creds domain.Credentials) error

	// Logout forgets credentials and service name for the current config.
	Logout() error

	// ServiceName returns the effective service name: the override when set,
	// otherwise the one stored for the current config.
	ServiceName() string

	// SetServiceName stores the service name for the current config.
	SetServiceName(name string) error

	// OverrideServiceName sets a service name for this process only.
	OverrideServiceName(name string)
}
