package ovhapi

import (
	"context"
	"net/http"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driven"
)

var _ driven.DataIntegrationAPI = (*Client)(nil)

// diPath returns cloud/project/{serviceName}/dataIntegration/{segments...}.
func diPath(serviceName string, segments ...string) []string {
	return append([]string{"cloud", "project", serviceName, "dataIntegration"}, segments...)
}

// SourceConnectors lists the connectors a source can be created from.
func (c *Client) SourceConnectors(ctx context.Context, serviceName string) ([]domain.SourceConnector, error) {
	return call[[]domain.SourceConnector](ctx, c, http.MethodGet, diPath(serviceName, "sourceConnectors"), nil)
}

// SourceConnector returns one source connector with its parameters.
func (c *Client) SourceConnector(ctx context.Context, serviceName, id string) (*domain.SourceConnector, error) {
	return callRef[domain.SourceConnector](ctx, c, http.MethodGet, diPath(serviceName, "sourceConnectors", id), nil)
}

// DestinationConnectors lists the connectors a destination can be created from.
func (c *Client) DestinationConnectors(ctx context.Context, serviceName string) ([]domain.DestinationConnector, error) {
	return call[[]domain.DestinationConnector](ctx, c, http.MethodGet, diPath(serviceName, "destinationConnectors"), nil)
}

// DestinationConnector returns one destination connector with its parameters.
func (c *Client) DestinationConnector(ctx context.Context, serviceName, id string) (*domain.DestinationConnector, error) {
	return callRef[domain.DestinationConnector](ctx, c, http.MethodGet, diPath(serviceName, "destinationConnectors", id), nil)
}

// Sources lists the sources of the project.
func (c *Client) Sources(ctx context.Context, serviceName string) ([]domain.Source, error) {
	return call[[]domain.Source](ctx, c, http.MethodGet, diPath(serviceName, "sources"), nil)
}

// Source returns one source.
func (c *Client) Source(ctx context.Context, serviceName, id string) (*domain.Source, error) {
	return callRef[domain.Source](ctx, c, http.MethodGet, diPath(serviceName, "sources", id), nil)
}

// SourceStatus runs a connection test against the source.
func (c *Client) SourceStatus(ctx context.Context, serviceName, id string) (*domain.Status, error) {
	return callRef[domain.Status](ctx, c, http.MethodGet, diPath(serviceName, "sources", id, "connection"), nil)
}

// SourceMetadata returns the metadata from the last extraction.
func (c *Client) SourceMetadata(ctx context.Context, serviceName, id string) ([]domain.TableMeta, error) {
	return call[[]domain.TableMeta](ctx, c, http.MethodGet, diPath(serviceName, "sources", id, "metadata"), nil)
}

// ExtractSourceMetadata starts a new metadata extraction.
func (c *Client) ExtractSourceMetadata(ctx context.Context, serviceName, id string) ([]domain.TableMeta, error) {
	return call[[]domain.TableMeta](ctx, c, http.MethodPost, diPath(serviceName, "sources", id, "metadata"), nil)
}

// CreateSource creates a source from spec.
func (c *Client) CreateSource(ctx context.Context, serviceName string, spec domain.SourceSpec) (*domain.Source, error) {
	return callRef[domain.Source](ctx, c, http.MethodPost, diPath(serviceName, "sources"), spec)
}

// UpdateSource replaces the name and parameters of a source.
func (c *Client) UpdateSource(ctx context.Context, serviceName, id string, spec domain.SourceSpec) (*domain.Source, error) {
	return callRef[domain.Source](ctx, c, http.MethodPut, diPath(serviceName, "sources", id), spec)
}

// DeleteSource removes a source.
func (c *Client) DeleteSource(ctx context.Context, serviceName, id string) error {
	return exec(ctx, c, http.MethodDelete, diPath(serviceName, "sources", id), nil)
}

// Destinations lists the destinations of the project.
func (c *Client) Destinations(ctx context.Context, serviceName string) ([]domain.Destination, error) {
	return call[[]domain.Destination](ctx, c, http.MethodGet, diPath(serviceName, "destinations"), nil)
}

// Destination returns one destination.
func (c *Client) Destination(ctx context.Context, serviceName, id string) (*domain.Destination, error) {
	return callRef[domain.Destination](ctx, c, http.MethodGet, diPath(serviceName, "destinations", id), nil)
}

// DestinationStatus runs a connection test against the destination.
func (c *Client) DestinationStatus(ctx context.Context, serviceName, id string) (*domain.Status, error) {
	return callRef[domain.Status](ctx, c, http.MethodGet, diPath(serviceName, "destinations", id, "connection"), nil)
}

// CreateDestination creates a destination from spec.
func (c *Client) CreateDestination(ctx context.Context, serviceName string, spec domain.DestinationSpec) (*domain.Destination, error) {
	return callRef[domain.Destination](ctx, c, http.MethodPost, diPath(serviceName, "destinations"), spec)
}

// UpdateDestination replaces the name and parameters of a destination.
func (c *Client) UpdateDestination(ctx context.Context, serviceName, id string, spec domain.DestinationSpec) (*domain.Destination, error) {
	return callRef[domain.Destination](ctx, c, http.MethodPut, diPath(serviceName, "destinations", id), spec)
}

// DeleteDestination removes a destination.
func (c *Client) DeleteDestination(ctx context.Context, serviceName, id string) error {
	return exec(ctx, c, http.MethodDelete, diPath(serviceName, "destinations", id), nil)
}

// Workflows lists the workflows of the project.
func (c *Client) Workflows(ctx context.Context, serviceName string) ([]domain.Workflow, error) {
	return call[[]domain.Workflow](ctx, c, http.MethodGet, diPath(serviceName, "workflows"), nil)
}

// Workflow returns one workflow.
func (c *Client) Workflow(ctx context.Context, serviceName, id string) (*domain.Workflow, error) {
	return callRef[domain.Workflow](ctx, c, http.MethodGet, diPath(serviceName, "workflows", id), nil)
}

// CreateWorkflow creates a workflow from spec.
func (c *Client) CreateWorkflow(ctx context.Context, serviceName string, spec domain.WorkflowSpec) (*domain.Workflow, error) {
	return callRef[domain.Workflow](ctx, c, http.MethodPost, diPath(serviceName, "workflows"), spec)
}

// UpdateWorkflow sends only the fields set in patch.
func (c *Client) UpdateWorkflow(ctx context.Context, serviceName, id string, patch domain.WorkflowPatch) (*domain.Workflow, error) {
	return callRef[domain.Workflow](ctx, c, http.MethodPut, diPath(serviceName, "workflows", id), patch)
}

// DeleteWorkflow removes a workflow.
func (c *Client) DeleteWorkflow(ctx context.Context, serviceName, id string) error {
	return exec(ctx, c, http.MethodDelete, diPath(serviceName, "workflows", id), nil)
}

// Jobs lists the jobs of a workflow.
func (c *Client) Jobs(ctx context.Context, serviceName, workflowID string) ([]domain.Job, error) {
	return call[[]domain.Job](ctx, c, http.MethodGet, diPath(serviceName, "workflows", workflowID, "jobs"), nil)
}

// Job returns one job of a workflow.
func (c *Client) Job(ctx context.Context, serviceName, workflowID, id string) (*domain.Job, error) {
	return callRef[domain.Job](ctx, c, http.MethodGet, diPath(serviceName, "workflows", workflowID, "jobs", id), nil)
}

// RunWorkflow starts a job for the workflow.
func (c *Client) RunWorkflow(ctx context.Context, serviceName, workflowID string) (*domain.Job, error) {
	return callRef[domain.Job](ctx, c, http.MethodPost, diPath(serviceName, "workflows", workflowID, "jobs"), domain.NewJobPost())
}

// StopJob asks the API to stop a running job.
func (c *Client) StopJob(ctx context.Context, serviceName, workflowID, id string) error {
	return exec(ctx, c, http.MethodDelete, diPath(serviceName, "workflows", workflowID, "jobs", id), nil)
}
