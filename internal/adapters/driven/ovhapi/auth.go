package ovhapi

import (
	"context"
	"net/http"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driven"
)

var _ driven.AuthAPI = (*Client)(nil)

// Me returns the account behind the consumer key.
func (c *Client) Me(ctx context.Context) (*domain.Me, error) {
	return callRef[domain.Me](ctx, c, http.MethodGet, []string{"auth", "details"}, nil)
}

// CurrentCredential returns the credential the consumer key belongs to.
func (c *Client) CurrentCredential(ctx context.Context) (*domain.CredentialDetails, error) {
	return callRef[domain.CredentialDetails](ctx, c, http.MethodGet, []string{"auth", "currentCredential"}, nil)
}
