// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - ConfigStore: Context persistence (credentials, selected config, service names)
//   - AuthAPI: Credential checks against the OVHcloud API
//   - ProjectAPI: Public cloud project discovery
//   - DataIntegrationAPI: Sources, destinations, connectors, workflows and jobs
//
// The three API ports are implemented by the signed ovhapi client.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
