// Package server holds the HTTP server configuration.
//
// The configuration is loaded by core/config from environment variables
// (SERVER_PORT, SERVER_API_KEY, ...) with defaults taken from struct tags.
package server
