package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Process exit codes.
const (
	ExitSuccess = 0

	// ExitUser covers anything the user can fix: flags, env, config file.
	ExitUser = 1

	// ExitSystem covers I/O failures and internal errors.
	ExitSystem = 2
)

// Wrapping helpers shared by the whole module.
var (
	New         = crdb.New
	Newf        = crdb.Newf
	Wrap        = crdb.Wrap
	Wrapf       = crdb.Wrapf
	Is          = crdb.Is
	As          = crdb.As
	WithHint    = crdb.WithHint
	GetAllHints = crdb.GetAllHints
)

// Sentinels shared across packages.
var (
	// ErrMissingInstance indicates no Glean instance name was supplied.
	ErrMissingInstance = New("instance is required")

	// ErrNotFound is wrapped with the name of what was missing.
	ErrNotFound = New("resource not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = New("invalid configuration")

	// ErrSelectionCancelled indicates an interactive prompt was aborted.
	ErrSelectionCancelled = New("selection cancelled")
)

// ExitError attaches an exit code and an optional one-line suggestion to
// an error. The CLI prints the suggestion under the error message.
type ExitError struct {
	Err  error
	Code int

	// Suggestion tells the user what to run or change next.
	Suggestion string
}

// NewExitError returns an ExitError without a suggestion.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError marks err as the user's to fix.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError marks err as an environment or internal failure.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// NewConfigError marks err as a problem in the configuration file or
// GLEAN_ environment.
func NewConfigError(err error) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: "Check ~/.config/mcp-config-glean/config.yaml",
	}
}

func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ExitCode returns the exit code carried by err, ExitSuccess for nil, and
// ExitUser for errors that carry no ExitError.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUser
}
