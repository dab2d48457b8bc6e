// Package logging builds the structured slog logger used across the
// service: level and format come from configuration, output is JSON for
// collectors or text for terminals.
package logging
