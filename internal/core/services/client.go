package services

import (
	"fmt"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driven"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driving"
)

// apiFor builds an API client from the current context.
func apiFor(contexts driving.ContextService, newClient driven.APIClientFactory) (driven.APIClient, error) {
	if newClient == nil {
		return nil, domain.ErrNotAuthenticated
	}
	creds, ok := contexts.Credentials()
	if !ok {
		return nil, domain.ErrNotAuthenticated
	}
	api, err := newClient(contexts.CurrentConfig().EndpointURL, creds)
	if err != nil {
		return nil, fmt.Errorf("create api client: %w", err)
	}
	return api, nil
}
