package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ovh/ovhdata-cli/internal/core/ports/driving"
)

const uriScheme = "ovhdata://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "workflows",
		Name:        "workflows",
		Description: "Workflows of the selected project",
		MIMEType:    "application/json",
	}, s.handleWorkflowsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "workflows/{workflowId}/jobs",
		Name:        "workflow-jobs",
		Description: "Jobs of a specific workflow",
		MIMEType:    "application/json",
	}, s.handleJobsResource)
}

func (s *Server) handleWorkflowsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	workflows, err := s.ports.DataIntegration.ListWorkflows(ctx, driving.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing workflows: %w", err)
	}
	return jsonResource(req.Params.URI, toWorkflows(workflows).Workflows)
}

func (s *Server) handleJobsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	workflowID := extractWorkflowID(req.Params.URI)
	if workflowID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	jobs, err := s.ports.DataIntegration.ListJobs(ctx, workflowID, driving.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	return jsonResource(req.Params.URI, toJobs(jobs).Jobs)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractWorkflowID extracts the workflow ID from a URI like ovhdata://workflows/{workflowId}/jobs.
func extractWorkflowID(uri string) string {
	const prefix = uriScheme + "workflows/"
	const suffix = "/jobs"

	if !strings.HasPrefix(uri, prefix) || !strings.HasSuffix(uri, suffix) {
		return ""
	}
	id := strings.TrimSuffix(strings.TrimPrefix(uri, prefix), suffix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
