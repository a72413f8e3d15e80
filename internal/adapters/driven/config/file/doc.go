// Package file provides the file-backed context store.
//
// The context (selected region, credentials, service names and API
// settings) lives in a single TOML file with owner-only permissions.
package file
