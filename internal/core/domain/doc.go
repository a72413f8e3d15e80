// Package domain defines the core entities of the ovhdata CLI.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Source, Destination: Data Integration endpoints and their specs
//   - SourceConnector, DestinationConnector: connector catalogue entries
//   - Workflow, Job: scheduled transfers and their executions
//   - Credentials, Config: API keys and the regional endpoints they target
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
