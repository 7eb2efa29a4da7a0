// Package logging provides structured logging for mcp-config-glean using slog.
//
// Loggers write human-readable, optionally colourised text to a terminal or
// JSON for machines. Every handler built here redacts attributes whose key
// or value looks like a credential, so a Glean API token never reaches the
// log even at trace level.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  logging.LevelFromVerbosity(verbosity),
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Debug("building configuration", "client", "cursor")
//
// The logger for a command travels in its context:
//
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Info("done")
//
// # Testing
//
// [ForTest] routes output through t.Log so it only shows for failing tests.
package logging
