// Package logging provides a unified logging interface for the application.
// It abstracts the underlying zerolog implementation, allowing consistent
// structured logging across components while keeping callers decoupled from
// the backend.
package logging
