// Package logging wraps log/slog construction for the CLI: console or JSON
// output, optional log-file teeing, and shared attribute helpers so call
// sites stay terse.
package logging
