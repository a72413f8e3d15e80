package mcp

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ovh/ovhdata-cli/internal/core/domain"
	"github.com/ovh/ovhdata-cli/internal/core/ports/driving"
)

// ListInput is the input schema of the list tools.
type ListInput struct {
	Sort   string `json:"sort,omitempty" jsonschema:"field to order by, e.g. name, status or age"`
	Desc   bool   `json:"desc,omitempty" jsonschema:"sort in descending order"`
	Filter string `json:"filter,omitempty" jsonschema:"JSONPath filter applied to the list"`
}

func (in ListInput) options() driving.ListOptions {
	return driving.ListOptions{Sort: in.Sort, Desc: in.Desc, Filter: in.Filter}
}

// GetInput is the input schema of the get tools.
type GetInput struct {
	ID string `json:"id" jsonschema:"identifier of the resource"`
}

// ListJobsInput is the input schema of the list_jobs tool.
type ListJobsInput struct {
	WorkflowID string `json:"workflow_id" jsonschema:"identifier of the workflow"`
	Sort       string `json:"sort,omitempty" jsonschema:"field to order by: age or status"`
	Desc       bool   `json:"desc,omitempty" jsonschema:"sort in descending order"`
}

// ResourceOutput describes a source or a destination. Parameter values
// are left out as they may hold secrets.
type ResourceOutput struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Status         string   `json:"status"`
	ConnectorID    string   `json:"connector_id"`
	CreationDate   string   `json:"creation_date"`
	LastUpdateDate string   `json:"last_update_date,omitempty"`
	Parameters     []string `json:"parameters,omitempty"`
}

// ResourcesOutput is the output schema of list_sources and list_destinations.
type ResourcesOutput struct {
	Items []ResourceOutput `json:"items"`
	Count int              `json:"count"`
}

// WorkflowOutput describes a workflow.
type WorkflowOutput struct {
	ID                string `json:"id"`
	Name              string `json:"name"`
	Description       string `json:"description,omitempty"`
	Region            string `json:"region"`
	SourceID          string `json:"source_id,omitempty"`
	SourceName        string `json:"source_name,omitempty"`
	DestinationID     string `json:"destination_id,omitempty"`
	DestinationName   string `json:"destination_name,omitempty"`
	Schedule          string `json:"schedule,omitempty"`
	Enabled           bool   `json:"enabled"`
	Status            string `json:"status,omitempty"`
	LastExecutionDate string `json:"last_execution_date,omitempty"`
	Error             string `json:"error,omitempty"`
}

// WorkflowsOutput is the output schema of list_workflows.
type WorkflowsOutput struct {
	Workflows []WorkflowOutput `json:"workflows"`
	Count     int              `json:"count"`
}

// JobOutput describes a job.
type JobOutput struct {
	ID        string `json:"id"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	StartedAt string `json:"started_at,omitempty"`
	EndedAt   string `json:"ended_at,omitempty"`
}

// JobsOutput is the output schema of list_jobs.
type JobsOutput struct {
	Jobs  []JobOutput `json:"jobs"`
	Count int         `json:"count"`
}

// ConnectorOutput describes a source connector.
type ConnectorOutput struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Version          string   `json:"version"`
	Description      string   `json:"description,omitempty"`
	DocumentationURL string   `json:"documentation_url,omitempty"`
	Mandatory        []string `json:"mandatory_parameters,omitempty"`
}

// ConnectorsOutput is the output schema of list_source_connectors.
type ConnectorsOutput struct {
	Connectors []ConnectorOutput `json:"connectors"`
	Count      int               `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_sources",
		Description: "List the Data Integration sources of the selected project",
	}, s.handleListSources)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_source",
		Description: "Get a Data Integration source by id",
	}, s.handleGetSource)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_destinations",
		Description: "List the Data Integration destinations of the selected project",
	}, s.handleListDestinations)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_workflows",
		Description: "List the Data Integration workflows of the selected project",
	}, s.handleListWorkflows)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_workflow",
		Description: "Get a Data Integration workflow by id",
	}, s.handleGetWorkflow)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_jobs",
		Description: "List the jobs of a workflow",
	}, s.handleListJobs)
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_source_connectors",
		Description: "List the connectors sources can be created from",
	}, s.handleListSourceConnectors)
}

func (s *Server) handleListSources(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ResourcesOutput, error) {
	sources, err := s.ports.DataIntegration.ListSources(ctx, input.options())
	if err != nil {
		return nil, ResourcesOutput{}, err
	}
	output := ResourcesOutput{Items: make([]ResourceOutput, len(sources)), Count: len(sources)}
	for i, src := range sources {
		output.Items[i] = toResource(src.ID, src.Name, src.Status, src.ConnectorID,
			src.CreationDate, src.LastUpdateDate, src.Parameters)
	}
	return nil, output, nil
}

func (s *Server) handleGetSource(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetInput,
) (*mcp.CallToolResult, ResourceOutput, error) {
	src, err := s.ports.DataIntegration.GetSource(ctx, input.ID)
	if err != nil {
		return nil, ResourceOutput{}, err
	}
	return nil, toResource(src.ID, src.Name, src.Status, src.ConnectorID,
		src.CreationDate, src.LastUpdateDate, src.Parameters), nil
}

func (s *Server) handleListDestinations(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, ResourcesOutput, error) {
	destinations, err := s.ports.DataIntegration.ListDestinations(ctx, input.options())
	if err != nil {
		return nil, ResourcesOutput{}, err
	}
	output := ResourcesOutput{Items: make([]ResourceOutput, len(destinations)), Count: len(destinations)}
	for i, d := range destinations {
		output.Items[i] = toResource(d.ID, d.Name, d.Status, d.ConnectorID,
			d.CreationDate, d.LastUpdateDate, d.Parameters)
	}
	return nil, output, nil
}

func (s *Server) handleListWorkflows(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListInput,
) (*mcp.CallToolResult, WorkflowsOutput, error) {
	workflows, err := s.ports.DataIntegration.ListWorkflows(ctx, input.options())
	if err != nil {
		return nil, WorkflowsOutput{}, err
	}
	return nil, toWorkflows(workflows), nil
}

func (s *Server) handleGetWorkflow(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetInput,
) (*mcp.CallToolResult, WorkflowOutput, error) {
	workflow, err := s.ports.DataIntegration.GetWorkflow(ctx, input.ID)
	if err != nil {
		return nil, WorkflowOutput{}, err
	}
	return nil, toWorkflow(*workflow), nil
}

func (s *Server) handleListJobs(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ListJobsInput,
) (*mcp.CallToolResult, JobsOutput, error) {
	jobs, err := s.ports.DataIntegration.ListJobs(ctx, input.WorkflowID,
		driving.ListOptions{Sort: input.Sort, Desc: input.Desc})
	if err != nil {
		return nil, JobsOutput{}, err
	}
	return nil, toJobs(jobs), nil
}

func (s *Server) handleListSourceConnectors(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ struct{},
) (*mcp.CallToolResult, ConnectorsOutput, error) {
	connectors, err := s.ports.DataIntegration.SourceConnectors(ctx)
	if err != nil {
		return nil, ConnectorsOutput{}, err
	}
	output := ConnectorsOutput{Connectors: make([]ConnectorOutput, len(connectors)), Count: len(connectors)}
	for i, c := range connectors {
		var mandatory []string
		for _, p := range c.Parameters {
			if p.Mandatory {
				mandatory = append(mandatory, p.Name)
			}
		}
		output.Connectors[i] = ConnectorOutput{
			ID:               c.ID,
			Name:             c.Name,
			Version:          c.Version,
			Description:      c.Description,
			DocumentationURL: deref(c.DocumentationURL),
			Mandatory:        mandatory,
		}
	}
	return nil, output, nil
}

func toResource(
	id, name, status, connectorID string,
	created time.Time,
	updated *time.Time,
	params []domain.Parameter,
) ResourceOutput {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return ResourceOutput{
		ID:             id,
		Name:           name,
		Status:         status,
		ConnectorID:    connectorID,
		CreationDate:   formatTime(&created),
		LastUpdateDate: formatTime(updated),
		Parameters:     names,
	}
}

func toWorkflow(w domain.Workflow) WorkflowOutput {
	out := WorkflowOutput{
		ID:                w.ID,
		Name:              w.Name,
		Description:       deref(w.Description),
		Region:            w.Region,
		SourceID:          deref(w.SourceID),
		SourceName:        deref(w.SourceName),
		DestinationID:     deref(w.DestinationID),
		DestinationName:   deref(w.DestinationName),
		Schedule:          deref(w.Schedule),
		Enabled:           w.Enabled,
		Status:            deref(w.Status),
		LastExecutionDate: formatTime(w.LastExecutionDate),
	}
	if w.ErrorDetails != nil {
		out.Error = w.ErrorDetails.Code + ": " + w.ErrorDetails.Description
	}
	return out
}

func toWorkflows(workflows []domain.Workflow) WorkflowsOutput {
	out := WorkflowsOutput{Workflows: make([]WorkflowOutput, len(workflows)), Count: len(workflows)}
	for i := range workflows {
		out.Workflows[i] = toWorkflow(workflows[i])
	}
	return out
}

func toJobs(jobs []domain.Job) JobsOutput {
	out := JobsOutput{Jobs: make([]JobOutput, len(jobs)), Count: len(jobs)}
	for i, j := range jobs {
		out.Jobs[i] = JobOutput{
			ID:        j.ID,
			Status:    j.Status,
			CreatedAt: formatTime(&j.CreatedAt),
			StartedAt: formatTime(j.StartedAt),
			EndedAt:   formatTime(j.EndedAt),
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
