// Package mcp provides an MCP (Model Context Protocol) server adapter for ovhdata-cli.
// It gives AI assistants read-only access to the Data Integration resources
// of the selected cloud project.
package mcp

import "errors"

// ErrMissingDataIntegrationService is returned when the data integration service is not provided.
var ErrMissingDataIntegrationService = errors.New("mcp: data integration service is required")
