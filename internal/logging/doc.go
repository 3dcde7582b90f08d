// Package logging provides structured logging for axscale.
//
// This package wraps the zap logger with convenience functions. The
// tool is silent by default: logging only activates when the
// AXSCALE_LOG_LEVEL environment variable names a level, so plain
// command output never carries log lines.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Per-device detail (opens, closes, applied bounds)
//   - Info: Normal operations (capture started/finished, mapping applied)
//   - Warn: Non-fatal issues (skipped mapping lines, registry problems)
//   - Error: Failures worth a log trail beyond the CLI error message
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Capture started",
//	    zap.String("map_file", "/home/u/pad.map"),
//	)
//
// # Configuration
//
// Initialize logging at process startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    // report and exit
//	}
//	defer logging.Sync()
//
// # Output Format
//
// Logs are written to stderr in console format, keeping stdout free
// for user-facing output:
//
//	2025-11-25T10:30:45.123-0800  INFO  Capture started
//	  map_file=/home/u/pad.map
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying
// zap logger handles synchronization automatically.
package logging
