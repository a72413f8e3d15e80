package driven

import (
	"context"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

// AuthAPI exposes the authentication endpoints.
type AuthAPI interface {
	// Me returns details about the logged-in account.
	Me(ctx context.Context) (*domain.Me, error)

	// CurrentCredential returns the consumer key in use.
	// A 401 or 403 means the stored credentials are not valid.
	CurrentCredential(ctx context.Context) (*domain.CredentialDetails, error)
}

// ProjectAPI exposes the public cloud project endpoints.
type ProjectAPI interface {
	// ProjectList returns the service names of all projects.
	ProjectList(ctx context.Context) ([]string, error)

	// Project returns a single project.
	Project(ctx context.Context, serviceName string) (*domain.Project, error)

	// Projects returns every project with its details, in ProjectList order.
	Projects(ctx context.Context) ([]domain.Project, error)
}

// Errors returned by the API ports must satisfy errors.Is with
// domain.ErrNotAuthenticated when the credentials are rejected (401, 403)
// and with domain.ErrNotFound for a 404.

// DataIntegrationAPI exposes the Data Integration endpoints of a project.
type DataIntegrationAPI interface {
	SourceConnectors(ctx context.Context, serviceName string) ([]domain.SourceConnector, error)
	SourceConnector(ctx context.Context, serviceName, id string) (*domain.SourceConnector, error)
	DestinationConnectors(ctx context.Context, serviceName string) ([]domain.DestinationConnector, error)
	DestinationConnector(ctx context.Context, serviceName, id string) (*domain.DestinationConnector, error)

	Sources(ctx context.Context, serviceName string) ([]domain.Source, error)
	Source(ctx context.Context, serviceName, id string) (*domain.Source, error)
	SourceStatus(ctx context.Context, serviceName, id string) (*domain.Status, error)
	SourceMetadata(ctx context.Context, serviceName, id string) ([]domain.TableMeta, error)
	ExtractSourceMetadata(ctx context.Context, serviceName, id string) ([]domain.TableMeta, error)
	CreateSource(ctx context.Context, serviceName string, spec domain.SourceSpec) (*domain.Source, error)
	UpdateSource(ctx context.Context, serviceName, id string, spec domain.SourceSpec) (*domain.Source, error)
	DeleteSource(ctx context.Context, serviceName, id string) error

	Destinations(ctx context.Context, serviceName string) ([]domain.Destination, error)
	Destination(ctx context.Context, serviceName, id string) (*domain.Destination, error)
	DestinationStatus(ctx context.Context, serviceName, id string) (*domain.Status, error)
	CreateDestination(ctx context.Context, serviceName string, spec domain.DestinationSpec) (*domain.Destination, error)
	UpdateDestination(ctx context.Context, serviceName, id string, spec domain.DestinationSpec) (*domain.Destination, error)
	DeleteDestination(ctx context.Context, serviceName, id string) error

	Workflows(ctx context.Context, serviceName string) ([]domain.Workflow, error)
	Workflow(ctx context.Context, serviceName, id string) (*domain.Workflow, error)
	CreateWorkflow(ctx context.Context, serviceName string, spec domain.WorkflowSpec) (*domain.Workflow, error)
	UpdateWorkflow(ctx context.Context, serviceName, id string, patch domain.WorkflowPatch) (*domain.Workflow, error)
	DeleteWorkflow(ctx context.Context, serviceName, id string) error

	Jobs(ctx context.Context, serviceName, workflowID string) ([]domain.Job, error)
	Job(ctx context.Context, serviceName, workflowID, id string) (*domain.Job, error)
	RunWorkflow(ctx context.Context, serviceName, workflowID string) (*domain.Job, error)
	StopJob(ctx context.Context, serviceName, workflowID, id string) error
}

// APIClient is the whole remote API as seen by the services.
type APIClient interface {
	AuthAPI
	ProjectAPI
	DataIntegrationAPI
}

// APIClientFactory builds a client for an endpoint and a credential tuple.
// Login uses it to validate keys before they are stored.
type APIClientFactory func(endpoint string, creds domain.Credentials) (APIClient, error)
