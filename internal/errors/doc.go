// Package errors provides error handling conventions for mcp-config-glean.
//
// It re-exports the wrapping helpers from github.com/cockroachdb/errors so
// that every package in the module wraps errors the same way, defines
// sentinel errors for common failure conditions, and provides an ExitError
// type the CLI uses to pick a process exit code.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrInvalidConfig) {
//	    // handle bad config file
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (unknown client, bad flags, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := errors.NewUserError(clients.ErrUnknownClient, "Run: mcp-config-glean clients")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
