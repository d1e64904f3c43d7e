// Package logging assembles structured slog loggers used by the langcodes CLI.
//
// It owns the console and JSON handlers, level parsing, and output plumbing,
// and exposes context-aware helpers so every line of one invocation carries
// the same session ID. A no-op logger is provided for tests and library
// callers that do not want output.
package logging
