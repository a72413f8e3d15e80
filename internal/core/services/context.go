package services

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driven"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driving"
	"github.com/ovh/ovhdata-cli/internal/logger"
)

// Ensure ContextService implements the interface.
var _ driving.ContextService = (*ContextService)(nil)

// Context keys.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyContextUUID       = "context.uuid"
	keyCurrentConfig     = "context.current_config"
	keyCredentialsPrefix = "credentials."
	keyServiceNamePrefix = "service_names."
	keyRateLimit         = "api.rate_limit"
	keyTimeoutSeconds    = "api.timeout_seconds"

	suffixApplicationKey    = ".application_key"
	suffixApplicationSecret = ".application_secret"
	suffixConsumerKey       = ".consumer_key"
)

// DefaultTimeout applies when api.timeout_seconds is unset.
const DefaultTimeout = 30 * time.Second

// ContextService manages the persisted CLI context.
type ContextService struct {
	store   driven.ConfigStore
	configs map[string]domain.Config

	mu       sync.RWMutex
	override string
}

// NewContextService creates a context service over store.
func NewContextService(store driven.ConfigStore) *ContextService {
	return &ContextService{
		store:   store,
		configs: domain.DefaultConfigs(),
	}
}

// UUID returns the context id, creating it on first use.
func (s *ContextService) UUID() string {
	if id := s.store.GetString(keyContextUUID); id != "" {
		return id
	}
	id := uuid.NewString()
	if err := s.store.Set(keyContextUUID, id); err != nil {
		logger.Warn("unable to persist context id: %v", err)
	}
	return id
}

// CurrentConfig returns the selected config, OVH-EU by default.
func (s *ContextService) CurrentConfig() domain.Config {
	if cfg, ok := s.configs[s.store.GetString(keyCurrentConfig)]; ok {
		return cfg
	}
	return s.configs[domain.DefaultConfigName]
}

// Configs lists the configs in name order.
func (s *ContextService) Configs() []domain.ConfigView {
	current := s.CurrentConfig().Name
	views := make([]domain.ConfigView, 0, len(s.configs))
	for _, name := range domain.ConfigNames() {
		views = append(views, s.view(name, current))
	}
	return views
}

// Config returns one config.
func (s *ContextService) Config(name string) (*domain.ConfigView, error) {
	if _, ok := s.configs[name]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, name)
	}
	v := s.view(name, s.CurrentConfig().Name)
	return &v, nil
}

// SetCurrentConfig selects a config.
func (s *ContextService) SetCurrentConfig(name string) (*domain.ConfigView, error) {
	if _, ok := s.configs[name]; !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrConfigNotFound, name)
	}
	if err := s.store.Set(keyCurrentConfig, name); err != nil {
		return nil, fmt.Errorf("save current config: %w", err)
	}
	v := s.view(name, name)
	return &v, nil
}

func (s *ContextService) view(name, current string) domain.ConfigView {
	v := domain.ConfigView{Config: s.configs[name], Selected: name == current}
	if sn := s.store.GetString(keyServiceNamePrefix + name); sn != "" {
		v.Context = &domain.RuntimeContext{ServiceName: sn}
	}
	return v
}

// Credentials returns the credentials of the current config. The boolean is
// false unless all three keys are stored.
func (s *ContextService) Credentials() (domain.Credentials, bool) {
	prefix := keyCredentialsPrefix + s.CurrentConfig().Name
	creds := domain.Credentials{
		ApplicationKey:    s.store.GetString(prefix + suffixApplicationKey),
		ApplicationSecret: s.store.GetString(prefix + suffixApplicationSecret),
		ConsumerKey:       s.store.GetString(prefix + suffixConsumerKey),
	}
	return creds, creds.IsComplete()
}

// SaveCredentials stores credentials for the current config.
func (s *ContextService) SaveCredentials(creds domain.Credentials) error {
	if !creds.IsComplete() {
		return fmt.Errorf("%w: application key, application secret and consumer key are required", domain.ErrInvalidInput)
	}
	prefix := keyCredentialsPrefix + s.CurrentConfig().Name
	values := []struct{ key, value string }{
		{prefix + suffixApplicationKey, creds.ApplicationKey},
		{prefix + suffixApplicationSecret, creds.ApplicationSecret},
		{prefix + suffixConsumerKey, creds.ConsumerKey},
	}
	for _, v := range values {
		if err := s.store.Set(v.key, v.value); err != nil {
			return fmt.Errorf("save credentials: %w", err)
		}
	}
	return nil
}

// Logout removes the credentials and service name of the current config.
func (s *ContextService) Logout() error {
	name := s.CurrentConfig().Name
	prefix := keyCredentialsPrefix + name
	err := s.store.Delete(
		prefix+suffixApplicationKey,
		prefix+suffixApplicationSecret,
		prefix+suffixConsumerKey,
		keyServiceNamePrefix+name,
	)
	if err != nil {
		return fmt.Errorf("remove credentials: %w", err)
	}
	return nil
}

// ServiceName returns the override, or the stored service name.
func (s *ContextService) ServiceName() string {
	s.mu.RLock()
	override := s.override
	s.mu.RUnlock()
	if override != "" {
		return override
	}
	return s.store.GetString(keyServiceNamePrefix + s.CurrentConfig().Name)
}

// SetServiceName stores the service name of the current config.
func (s *ContextService) SetServiceName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty service name", domain.ErrInvalidInput)
	}
	if err := s.store.Set(keyServiceNamePrefix+s.CurrentConfig().Name, name); err != nil {
		return fmt.Errorf("save service name: %w", err)
	}
	return nil
}

// OverrideServiceName sets the service name for this process only.
func (s *ContextService) OverrideServiceName(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.override = name
}

// RateLimit returns the configured requests per second, 0 for none.
func (s *ContextService) RateLimit() float64 {
	if n := s.store.GetInt(keyRateLimit); n > 0 {
		return float64(n)
	}
	return 0
}

// Timeout returns the configured HTTP timeout.
func (s *ContextService) Timeout() time.Duration {
	if n := s.store.GetInt(keyTimeoutSeconds); n > 0 {
		return time.Duration(n) * time.Second
	}
	return DefaultTimeout
}
