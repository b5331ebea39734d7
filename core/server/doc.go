// Package server holds the HTTP server configuration.
//
// While the main application entry point handles the server startup, this package
// defines the configuration structure for server settings: the listen port,
// the API key protecting the mutation endpoints, and the TTL of the cached
// ordered listings.
//
// This package is primarily used by core/config to embed server settings.
package server
