package mcp

import (
	"github.com/ovh/ovhdata-cli/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server needs.
type Ports struct {
	// DataIntegration reads sources, destinations, workflows and jobs.
	DataIntegration driving.DataIntegrationService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.DataIntegration == nil {
		return ErrMissingDataIntegrationService
	}
	return nil
}
