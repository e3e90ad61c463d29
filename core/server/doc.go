// Package server holds the HTTP server configuration.
//
// The actual Fiber application is assembled in cmd/start.go; this package
// only carries the settings (port, API key) shared between the server and
// its middleware.
package server
