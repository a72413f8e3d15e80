// Package services implements the driving port interfaces.
// Services hold the CLI's behaviour and orchestrate calls to driven
// ports: the context store and the remote API.
package services
