// Package logging provides structured logging utilities for the
// dataset gate components.
//
// # Overview
//
// This package wraps the standard library slog package with
// project-wide defaults and conventions: JSON output to stderr,
// module/version context on every record, LOG_LEVEL environment
// configuration, and source location tracking at debug level.
//
// # Log Levels
//
// Supported log levels (case-insensitive):
//   - DEBUG: Detailed diagnostic information with source location
//   - INFO: General informational messages (default)
//   - WARN/WARNING: Potentially problematic situations
//   - ERROR: Failures requiring attention
//
// # Usage
//
// Setting the default logger:
//
//	func main() {
//	    logging.SetDefaultStructuredLoggerWithLevel("mammosctl", version, "info")
//	    slog.Info("validating dataset", "path", path)
//	}
//
// Creating an explicit logger for injection into the validator and
// composer (the core packages take a *slog.Logger rather than relying
// on the process-global default):
//
//	logger := logging.NewStructuredLogger("mammosctl", version, "debug")
//	v := validator.New(validator.WithLogger(logger))
//
// # Environment Configuration
//
// The LOG_LEVEL environment variable controls the default verbosity:
//
//	LOG_LEVEL=debug mammosctl validate uppsala ./dataset
package logging
