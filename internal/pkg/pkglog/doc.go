// Package pkglog sets up the process-wide slog logger: JSON on stdout, a level
// that config can change at startup, and per-request correlation IDs taken
// from the context.
package pkglog
