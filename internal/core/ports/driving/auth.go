package driving

import (
	"context"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

// AuthService logs users in and out.
type AuthService interface {
	// Login validates creds against the API and stores them on success.
	Login(ctx context.Context, creds domain.Credentials) (*domain.CredentialDetails, error)

	// Current checks the stored credentials.
	// Returns domain.ErrNotAuthenticated when none are stored or the API rejects them.
	Current(ctx context.Context) (*domain.CredentialDetails, error)

	// Logout forgets the stored credentials.
	Logout() error
}

// AccountService exposes account-level information.
type AccountService interface {
	// Me returns the logged-in account.
	Me(ctx context.Context) (*domain.Me, error)

	// Projects lists the public cloud projects the account can use.
	Projects(ctx context.Context) ([]domain.Project, error)
}
