package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driven"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driving"
	"github.com/ovh/ovhdata-cli/internal/logger"
)

// Ensure services implement the interfaces.
var (
	_ driving.AuthService    = (*AuthService)(nil)
	_ driving.AccountService = (*AccountService)(nil)
)

// AuthService validates and stores credentials.
type AuthService struct {
	contexts  driving.ContextService
	newClient driven.APIClientFactory
}

// NewAuthService creates an auth service.
func NewAuthService(contexts driving.ContextService, newClient driven.APIClientFactory) *AuthService {
	return &AuthService{contexts: contexts, newClient: newClient}
}

// Login checks creds against the current endpoint and stores them.
// Nothing is stored when the API rejects them.
func (s *AuthService) Login(ctx context.Context, creds domain.Credentials) (*domain.CredentialDetails, error) {
	if !creds.IsComplete() {
		return nil, fmt.Errorf("%w: application key, application secret and consumer key are required", domain.ErrInvalidInput)
	}
	if s.newClient == nil {
		return nil, errors.New("api client not configured")
	}
	cfg := s.contexts.CurrentConfig()
	api, err := s.newClient(cfg.EndpointURL, creds)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}

	details, err := api.CurrentCredential(ctx)
	if err != nil {
		return nil, fmt.Errorf("check credentials: %w", err)
	}
	if err := s.contexts.SaveCredentials(creds); err != nil {
		return nil, err
	}
	logger.Info("logged in to %s with application %s", cfg.Name, creds.ApplicationKey)
	return details, nil
}

// Current returns the details of the stored credentials.
func (s *AuthService) Current(ctx context.Context) (*domain.CredentialDetails, error) {
	api, err := apiFor(s.contexts, s.newClient)
	if err != nil {
		return nil, err
	}
	details, err := api.CurrentCredential(ctx)
	if err != nil {
		return nil, fmt.Errorf("check credentials: %w", err)
	}
	return details, nil
}

// Logout forgets the stored credentials.
func (s *AuthService) Logout() error {
	return s.contexts.Logout()
}

// AccountService exposes account information.
type AccountService struct {
	contexts  driving.ContextService
	newClient driven.APIClientFactory
}

// NewAccountService creates an account service.
func NewAccountService(contexts driving.ContextService, newClient driven.APIClientFactory) *AccountService {
	return &AccountService{contexts: contexts, newClient: newClient}
}

// Me returns the logged-in account.
func (s *AccountService) Me(ctx context.Context) (*domain.Me, error) {
	api, err := apiFor(s.contexts, s.newClient)
	if err != nil {
		return nil, err
	}
	me, err := api.Me(ctx)
	if err != nil {
		return nil, fmt.Errorf("get account: %w", err)
	}
	return me, nil
}

// Projects lists the account's public cloud projects.
func (s *AccountService) Projects(ctx context.Context) ([]domain.Project, error) {
	api, err := apiFor(s.contexts, s.newClient)
	if err != nil {
		return nil, err
	}
	projects, err := api.Projects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}
