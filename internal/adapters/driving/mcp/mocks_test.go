package mcp

import (
	"context"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driving"
)

// mockDIService is a mock implementation of driving.DataIntegrationService.
type mockDIService struct {
	sources      []domain.Source
	source       *domain.Source
	destinations []domain.Destination
	workflows    []domain.Workflow
	workflow     *domain.Workflow
	jobs         []domain.Job
	connectors   []domain.SourceConnector
	err          error

	lastOpts       driving.ListOptions
	lastWorkflowID string
	lastID         string
}

func (m *mockDIService) ServiceName() (string, error) { return "project-1", nil }

func (m *mockDIService) SourceConnectors(_ context.Context) ([]domain.SourceConnector, error) {
	return m.connectors, m.err
}

func (m *mockDIService) SourceConnector(_ context.Context, _ string) (*domain.SourceConnector, error) {
	return nil, m.err
}

func (m *mockDIService) DestinationConnectors(_ context.Context) ([]domain.DestinationConnector, error) {
	return nil, m.err
}

func (m *mockDIService) DestinationConnector(_ context.Context, _ string) (*domain.DestinationConnector, error) {
	return nil, m.err
}

func (m *mockDIService) ListSources(_ context.Context, opts driving.ListOptions) ([]domain.Source, error) {
	m.lastOpts = opts
	return m.sources, m.err
}

func (m *mockDIService) GetSource(_ context.Context, id string) (*domain.Source, error) {
	m.lastID = id
	return m.source, m.err
}

func (m *mockDIService) SourceStatus(_ context.Context, _ string) (*domain.Status, error) {
	return nil, m.err
}

func (m *mockDIService) SourceMetadata(_ context.Context, _ string) ([]domain.TableMeta, error) {
	return nil, m.err
}

func (m *mockDIService) ExtractSourceMetadata(_ context.Context, _ string) ([]domain.TableMeta, error) {
	return nil, m.err
}

func (m *mockDIService) CreateSource(_ context.Context, _ domain.SourceSpec) (*domain.Source, error) {
	return nil, m.err
}

func (m *mockDIService) UpdateSource(_ context.Context, _ string, _ domain.SourceSpec) (*domain.Source, error) {
	return nil, m.err
}

func (m *mockDIService) DeleteSource(_ context.Context, _ string) error { return m.err }

func (m *mockDIService) ListDestinations(_ context.Context, opts driving.ListOptions) ([]domain.Destination, error) {
	m.lastOpts = opts
	return m.destinations, m.err
}

func (m *mockDIService) GetDestination(_ context.Context, _ string) (*domain.Destination, error) {
	return nil, m.err
}

func (m *mockDIService) DestinationStatus(_ context.Context, _ string) (*domain.Status, error) {
	return nil, m.err
}

func (m *mockDIService) CreateDestination(_ context.Context, _ domain.DestinationSpec) (*domain.Destination, error) {
	return nil, m.err
}

func (m *mockDIService) UpdateDestination(
	_ context.Context, _ string, _ domain.DestinationSpec,
) (*domain.Destination, error) {
	return nil, m.err
}

func (m *mockDIService) DeleteDestination(_ context.Context, _ string) error { return m.err }

func (m *mockDIService) ListWorkflows(_ context.Context, opts driving.ListOptions) ([]domain.Workflow, error) {
	m.lastOpts = opts
	return m.workflows, m.err
}

func (m *mockDIService) GetWorkflow(_ context.Context, id string) (*domain.Workflow, error) {
	m.lastID = id
	return m.workflow, m.err
}

func (m *mockDIService) CreateWorkflow(_ context.Context, _ domain.WorkflowSpec) (*domain.Workflow, error) {
	return nil, m.err
}

func (m *mockDIService) UpdateWorkflow(_ context.Context, _ string, _ domain.WorkflowPatch) (*domain.Workflow, error) {
	return nil, m.err
}

func (m *mockDIService) SetWorkflowEnabled(_ context.Context, _ string, _ bool) (*domain.Workflow, error) {
	return nil, m.err
}

func (m *mockDIService) DeleteWorkflow(_ context.Context, _ string) error { return m.err }

func (m *mockDIService) RunWorkflow(_ context.Context, _ string) (*domain.Job, error) {
	return nil, m.err
}

func (m *mockDIService) ListJobs(_ context.Context, workflowID string, opts driving.ListOptions) ([]domain.Job, error) {
	m.lastWorkflowID = workflowID
	m.lastOpts = opts
	return m.jobs, m.err
}

func (m *mockDIService) GetJob(_ context.Context, _, _ string) (*domain.Job, error) {
	return nil, m.err
}

func (m *mockDIService) StopJob(_ context.Context, _, _ string) error { return m.err }
