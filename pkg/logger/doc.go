// Package logger builds configured log/slog loggers and provides the
// attribute helpers used across the codebase.
//
// The factory keeps log setup consistent: text for development, JSON for
// aggregation, level via option. Services default to Discard so logging is
// injected explicitly rather than ambient.
package logger
