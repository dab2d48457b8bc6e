// Package server provides the HTTP API for rule evaluation: a decision
// endpoint, rule set introspection, health checks, and the optional
// Prometheus exposition endpoint, wrapped in request-ID, logging, and
// recovery middleware.
package server
