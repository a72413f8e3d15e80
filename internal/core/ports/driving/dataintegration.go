package driving

import (
	"context"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
)

// ListOptions controls ordering and filtering of list results.
type ListOptions struct {
	// Sort is a sort key from the domain Sort* constants. Empty means default order.
	Sort string

	// Desc reverses the order.
	Desc bool

	// Filter is a JSONPath expression evaluated on the JSON array of results.
	Filter string
}

// DataIntegrationService runs Data Integration operations against the
// effective service name.
type DataIntegrationService interface {
	// ServiceName returns the project the operations target.
	ServiceName() (string, error)

	SourceConnectors(ctx context.Context) ([]domain.SourceConnector, error)
	SourceConnector(ctx context.Context, id string) (*domain.SourceConnector, error)
	DestinationConnectors(ctx context.Context) ([]domain.DestinationConnector, error)
	DestinationConnector(ctx context.Context, id string) (*domain.DestinationConnector, error)

	ListSources(ctx context.Context, opts ListOptions) ([]domain.Source, error)
	GetSource(ctx context.Context, id string) (*domain.Source, error)
	SourceStatus(ctx context.Context, id string) (*domain.Status, error)
	SourceMetadata(ctx context.Context, id string) ([]domain.TableMeta, error)
	ExtractSourceMetadata(ctx context.Context, id string) ([]domain.TableMeta, error)
	CreateSource(ctx context.Context, spec domain.SourceSpec) (*domain.Source, error)
	UpdateSource(ctx context.Context, id string, spec domain.SourceSpec) (*domain.Source, error)
	DeleteSource(ctx context.Context, id string) error

	ListDestinations(ctx context.Context, opts ListOptions) ([]domain.Destination, error)
	GetDestination(ctx context.Context, id string) (*domain.Destination, error)
	DestinationStatus(ctx context.Context, id string) (*domain.Status, error)
	CreateDestination(ctx context.Context, spec domain.DestinationSpec) (*domain.Destination, error)
	UpdateDestination(ctx context.Context, id string, spec domain.DestinationSpec) (*domain.Destination, error)
	DeleteDestination(ctx context.Context, id string) error

	ListWorkflows(ctx context.Context, opts ListOptions) ([]domain.Workflow, error)
	GetWorkflow(ctx context.Context, id string) (*domain.Workflow, error)
	CreateWorkflow(ctx context.Context, spec domain.WorkflowSpec) (*domain.Workflow, error)
	UpdateWorkflow(ctx context.Context, id string, patch domain.WorkflowPatch) (*domain.Workflow, error)
	SetWorkflowEnabled(ctx context.Context, id string, enabled bool) (*domain.Workflow, error)
	DeleteWorkflow(ctx context.Context, id string) error
	RunWorkflow(ctx context.Context, id string) (*domain.Job, error)

	ListJobs(ctx context.Context, workflowID string, opts ListOptions) ([]domain.Job, error)
	GetJob(ctx context.Context, workflowID, id string) (*domain.Job, error)
	StopJob(ctx context.Context, workflowID, id string) error
}
