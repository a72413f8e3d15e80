package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driven"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driving"
)

// Ensure DataIntegrationService implements the interface.
var _ driving.DataIntegrationService = (*DataIntegrationService)(nil)

// DataIntegrationService runs Data Integration operations in the project
// selected for the current config.
type DataIntegrationService struct {
	contexts  driving.ContextService
	newClient driven.APIClientFactory
}

// NewDataIntegrationService creates a Data Integration service.
func NewDataIntegrationService(contexts driving.ContextService, newClient driven.APIClientFactory) *DataIntegrationService {
	return &DataIntegrationService{contexts: contexts, newClient: newClient}
}

// ServiceName returns the effective service name.
func (s *DataIntegrationService) ServiceName() (string, error) {
	sn := s.contexts.ServiceName()
	if sn == "" {
		return "", domain.ErrNoServiceName
	}
	return sn, nil
}

// scope returns the API and the service name every call needs.
func (s *DataIntegrationService) scope() (driven.DataIntegrationAPI, string, error) {
	api, err := apiFor(s.contexts, s.newClient)
	if err != nil {
		return nil, "", err
	}
	sn, err := s.ServiceName()
	if err != nil {
		return nil, "", err
	}
	return api, sn, nil
}

func requireID(kind, id string) error {
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty %s id", domain.ErrInvalidInput, kind)
	}
	return nil
}

// Connectors

func (s *DataIntegrationService) SourceConnectors(ctx context.Context) ([]domain.SourceConnector, error) {
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	connectors, err := api.SourceConnectors(ctx, sn)
	if err != nil {
		return nil, fmt.Errorf("list source connectors: %w", err)
	}
	return connectors, nil
}

func (s *DataIntegrationService) SourceConnector(ctx context.Context, id string) (*domain.SourceConnector, error) {
	if err := requireID("connector", id); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	connector, err := api.SourceConnector(ctx, sn, id)
	if err != nil {
		return nil, fmt.Errorf("get source connector %s: %w", id, err)
	}
	return connector, nil
}

func (s *DataIntegrationService) DestinationConnectors(ctx context.Context) ([]domain.DestinationConnector, error) {
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	connectors, err := api.DestinationConnectors(ctx, sn)
	if err != nil {
		return nil, fmt.Errorf("list destination connectors: %w", err)
	}
	return connectors, nil
}

func (s *DataIntegrationService) DestinationConnector(ctx context.Context, id string) (*domain.DestinationConnector, error) {
	if err := requireID("connector", id); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	connector, err := api.DestinationConnector(ctx, sn, id)
	if err != nil {
		return nil, fmt.Errorf("get destination connector %s: %w", id, err)
	}
	return connector, nil
}

// Sources

// ListSources returns the sources sorted then filtered by opts.
func (s *DataIntegrationService) ListSources(ctx context.Context, opts driving.ListOptions) ([]domain.Source, error) {
	if err := domain.ValidateSortKey(opts.Sort, domain.SourceSortKeys); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	sources, err := api.Sources(ctx, sn)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return applyFilter(domain.SortSources(sources, opts.Sort, opts.Desc), opts.Filter)
}

func (s *DataIntegrationService) GetSource(ctx context.Context, id string) (*domain.Source, error) {
	if err := requireID("source", id); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	source, err := api.Source(ctx, sn, id)
	if err != nil {
		return nil, fmt.Errorf("get source %s: %w", id, err)
	}
	return source, nil
}

// SourceStatus tests the connection of a source.
func (s *DataIntegrationService) SourceStatus(ctx context.Context, id string) (*domain.Status, error) {
	if err := requireID("source", id); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	status, err := api.SourceStatus(ctx, sn, id)
	if err != nil {
		return nil, fmt.Errorf("get source %s status: %w", id, err)
	}
	return status, nil
}

func (s *DataIntegrationService) SourceMetadata(ctx context.Context, id string) ([]domain.TableMeta, error) {
	if err := requireID("source", id); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	meta, err := api.SourceMetadata(ctx, sn, id)
	if err != nil {
		return nil, fmt.Errorf("get source %s metadata: %w", id, err)
	}
	return meta, nil
}

func (s *DataIntegrationService) ExtractSourceMetadata(ctx context.Context, id string) ([]domain.TableMeta, error) {
	if err := requireID("source", id); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	meta, err := api.ExtractSourceMetadata(ctx, sn, id)
	if err != nil {
		return nil, fmt.Errorf("extract source %s metadata: %w", id, err)
	}
	return meta, nil
}

// CreateSource creates a source. The connector id is required.
func (s *DataIntegrationService) CreateSource(ctx context.Context, spec domain.SourceSpec) (*domain.Source, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, fmt.Errorf("%w: empty source name", domain.ErrInvalidInput)
	}
	if spec.ConnectorID == nil || *spec.ConnectorID == "" {
		return nil, fmt.Errorf("%w: empty connector id", domain.ErrInvalidInput)
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	source, err := api.CreateSource(ctx, sn, spec)
	if err != nil {
		return nil, fmt.Errorf("create source: %w", err)
	}
	return source, nil
}

// UpdateSource replaces the name and parameters of a source.
func (s *DataIntegrationService) UpdateSource(ctx context.Context, id string, spec domain.SourceSpec) (*domain.Source, error) {
	if err := requireID("source", id); err != nil {
		return nil, err
	}
	spec.ConnectorID = nil
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	source, err := api.UpdateSource(ctx, sn, id, spec)
	if err != nil {
		return nil, fmt.Errorf("update source %s: %w", id, err)
	}
	return source, nil
}

func (s *DataIntegrationService) DeleteSource(ctx context.Context, id string) error {
	if err := requireID("source", id); err != nil {
		return err
	}
	api, sn, err := s.scope()
	if err != nil {
		return err
	}
	if err := api.DeleteSource(ctx, sn, id); err != nil {
		return fmt.Errorf("delete source %s: %w", id, err)
	}
	return nil
}

// Destinations

// ListDestinations returns the destinations sorted then filtered by opts.
func (s *DataIntegrationService) ListDestinations(ctx context.Context, opts driving.ListOptions) ([]domain.Destination, error) {
	if err := domain.ValidateSortKey(opts.Sort, domain.SourceSortKeys); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	destinations, err := api.Destinations(ctx, sn)
	if err != nil {
		return nil, fmt.Errorf("list destinations: %w", err)
	}
	return applyFilter(domain.SortDestinations(destinations, opts.Sort, opts.Desc), opts.Filter)
}

func (s *DataIntegrationService) GetDestination(ctx context.Context, id string) (*domain.Destination, error) {
	if err := requireID("destination", id); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	destination, err := api.Destination(ctx, sn, id)
	if err != nil {
		return nil, fmt.Errorf("get destination %s: %w", id, err)
	}
	return destination, nil
}

// DestinationStatus tests the connection of a destination.
func (s *DataIntegrationService) DestinationStatus(ctx context.Context, id string) (*domain.Status, error) {
	if err := requireID("destination", id); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	status, err := api.DestinationStatus(ctx, sn, id)
	if err != nil {
		return nil, fmt.Errorf("get destination %s status: %w", id, err)
	}
	return status, nil
}

func (s *DataIntegrationService) CreateDestination(ctx context.Context, spec domain.DestinationSpec) (*domain.Destination, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, fmt.Errorf("%w: empty destination name", domain.ErrInvalidInput)
	}
	if spec.ConnectorID == nil || *spec.ConnectorID == "" {
		return nil, fmt.Errorf("%w: empty connector id", domain.ErrInvalidInput)
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	destination, err := api.CreateDestination(ctx, sn, spec)
	if err != nil {
		return nil, fmt.Errorf("create destination: %w", err)
	}
	return destination, nil
}

func (s *DataIntegrationService) UpdateDestination(ctx context.Context, id string, spec domain.DestinationSpec) (*domain.Destination, error) {
	if err := requireID("destination", id); err != nil {
		return nil, err
	}
	spec.ConnectorID = nil
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	destination, err := api.UpdateDestination(ctx, sn, id, spec)
	if err != nil {
		return nil, fmt.Errorf("update destination %s: %w", id, err)
	}
	return destination, nil
}

func (s *DataIntegrationService) DeleteDestination(ctx context.Context, id string) error {
	if err := requireID("destination", id); err != nil {
		return err
	}
	api, sn, err := s.scope()
	if err != nil {
		return err
	}
	if err := api.DeleteDestination(ctx, sn, id); err != nil {
		return fmt.Errorf("delete destination %s: %w", id, err)
	}
	return nil
}

// Workflows

// ListWorkflows returns the workflows sorted then filtered by opts.
func (s *DataIntegrationService) ListWorkflows(ctx context.Context, opts driving.ListOptions) ([]domain.Workflow, error) {
	if err := domain.ValidateSortKey(opts.Sort, domain.WorkflowSortKeys); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	workflows, err := api.Workflows(ctx, sn)
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	return applyFilter(domain.SortWorkflows(workflows, opts.Sort, opts.Desc), opts.Filter)
}

func (s *DataIntegrationService) GetWorkflow(ctx context.Context, id string) (*domain.Workflow, error) {
	if err := requireID("workflow", id); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	workflow, err := api.Workflow(ctx, sn, id)
	if err != nil {
		return nil, fmt.Errorf("get workflow %s: %w", id, err)
	}
	return workflow, nil
}

func (s *DataIntegrationService) CreateWorkflow(ctx context.Context, spec domain.WorkflowSpec) (*domain.Workflow, error) {
	switch {
	case strings.TrimSpace(spec.Name) == "":
		return nil, fmt.Errorf("%w: empty workflow name", domain.ErrInvalidInput)
	case spec.SourceID == "" || spec.DestinationID == "":
		return nil, fmt.Errorf("%w: a workflow needs a source and a destination", domain.ErrInvalidInput)
	case spec.Region == "":
		return nil, fmt.Errorf("%w: empty region", domain.ErrInvalidInput)
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	workflow, err := api.CreateWorkflow(ctx, sn, spec)
	if err != nil {
		return nil, fmt.Errorf("create workflow: %w", err)
	}
	return workflow, nil
}

// UpdateWorkflow applies patch. An empty patch is rejected.
func (s *DataIntegrationService) UpdateWorkflow(ctx context.Context, id string, patch domain.WorkflowPatch) (*domain.Workflow, error) {
	if err := requireID("workflow", id); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, fmt.Errorf("%w: nothing to update", domain.ErrInvalidInput)
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	workflow, err := api.UpdateWorkflow(ctx, sn, id, patch)
	if err != nil {
		return nil, fmt.Errorf("update workflow %s: %w", id, err)
	}
	return workflow, nil
}

// SetWorkflowEnabled enables or disables a workflow's schedule.
func (s *DataIntegrationService) SetWorkflowEnabled(ctx context.Context, id string, enabled bool) (*domain.Workflow, error) {
	return s.UpdateWorkflow(ctx, id, domain.WorkflowPatch{Enabled: &enabled})
}

func (s *DataIntegrationService) DeleteWorkflow(ctx context.Context, id string) error {
	if err := requireID("workflow", id); err != nil {
		return err
	}
	api, sn, err := s.scope()
	if err != nil {
		return err
	}
	if err := api.DeleteWorkflow(ctx, sn, id); err != nil {
		return fmt.Errorf("delete workflow %s: %w", id, err)
	}
	return nil
}

// RunWorkflow starts a job now.
func (s *DataIntegrationService) RunWorkflow(ctx context.Context, id string) (*domain.Job, error) {
	if err := requireID("workflow", id); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	job, err := api.RunWorkflow(ctx, sn, id)
	if err != nil {
		return nil, fmt.Errorf("run workflow %s: %w", id, err)
	}
	return job, nil
}

// Jobs

// ListJobs returns the jobs of a workflow sorted then filtered by opts.
func (s *DataIntegrationService) ListJobs(ctx context.Context, workflowID string, opts driving.ListOptions) ([]domain.Job, error) {
	if err := requireID("workflow", workflowID); err != nil {
		return nil, err
	}
	if err := domain.ValidateSortKey(opts.Sort, domain.JobSortKeys); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	jobs, err := api.Jobs(ctx, sn, workflowID)
	if err != nil {
		return nil, fmt.Errorf("list jobs of workflow %s: %w", workflowID, err)
	}
	return applyFilter(domain.SortJobs(jobs, opts.Sort, opts.Desc), opts.Filter)
}

func (s *DataIntegrationService) GetJob(ctx context.Context, workflowID, id string) (*domain.Job, error) {
	if err := requireID("workflow", workflowID); err != nil {
		return nil, err
	}
	if err := requireID("job", id); err != nil {
		return nil, err
	}
	api, sn, err := s.scope()
	if err != nil {
		return nil, err
	}
	job, err := api.Job(ctx, sn, workflowID, id)
	if err != nil {
		return nil, fmt.Errorf("get job %s: %w", id, err)
	}
	return job, nil
}

// StopJob stops a running job.
func (s *DataIntegrationService) StopJob(ctx context.Context, workflowID, id string) error {
	if err := requireID("workflow", workflowID); err != nil {
		return err
	}
	if err := requireID("job", id); err != nil {
		return err
	}
	api, sn, err := s.scope()
	if err != nil {
		return err
	}
	if err := api.StopJob(ctx, sn, workflowID, id); err != nil {
		return fmt.Errorf("stop job %s: %w", id, err)
	}
	return nil
}
