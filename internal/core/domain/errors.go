package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from transport errors raised by the API client.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or empty user input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidParameter indicates a connector parameter is not of the form name=value.
	ErrInvalidParameter = errors.New("invalid parameter, expected name=value")

	// ErrCanceled indicates the user declined a confirmation prompt.
	ErrCanceled = errors.New("canceled")

	// Context Errors.

	// ErrNotAuthenticated indicates no valid API credentials are available.
	// Run the login command to store credentials for the current config.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNoServiceName indicates no cloud project is selected for the current config.
	ErrNoServiceName = errors.New("no service name selected")

	// ErrConfigNotFound indicates an unknown config name was requested.
	ErrConfigNotFound = errors.New("unable to find any config with this name")
)
