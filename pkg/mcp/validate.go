package mcp

import (
	"fmt"
	"net/url"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
)

// Sentinel errors for params validation. Every one of them matches
// ErrInvalidParams through errors.Is.
var (
	// ErrInvalidParams is the parent of all params contract violations.
	ErrInvalidParams = errors.New("invalid connection params")

	// ErrInvalidTransport indicates an unrecognised transport value.
	ErrInvalidTransport = errors.Wrap(ErrInvalidParams, "invalid transport")

	// ErrMissingInstance indicates stdio params without GLEAN_INSTANCE.
	ErrMissingInstance = errors.Wrap(ErrInvalidParams, "stdio transport requires GLEAN_INSTANCE")

	// ErrMissingServerURL indicates http params without a server URL.
	ErrMissingServerURL = errors.Wrap(ErrInvalidParams, "http transport requires a server URL")

	// ErrInvalidServerURL indicates a server URL that is not absolute http(s).
	ErrInvalidServerURL = errors.Wrap(ErrInvalidParams, "server URL must be an absolute http(s) URL")

	// ErrEmptyEnvKey indicates an environment variable has an empty name.
	ErrEmptyEnvKey = errors.Wrap(ErrInvalidParams, "environment variable name is empty")

	// ErrEmptyHeaderKey indicates an HTTP header has an empty name.
	ErrEmptyHeaderKey = errors.Wrap(ErrInvalidParams, "header name is empty")
)

// ValidationError describes a single params contract violation.
type ValidationError struct {
	// Field identifies the offending field: transport, env, serverUrl, headers.
	Field string

	// Message is a human-readable description of the problem.
	Message string

	// Err is the underlying sentinel error.
	Err error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid params: field %q: %s", e.Field, e.Message)
	}
	return "invalid params: " + e.Message
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// Validate checks that p is well formed for its transport. It returns the
// first violation found, or nil.
func (p Params) Validate() error {
	switch p.Transport {
	case TransportStdio:
		return p.validateStdio()
	case TransportHTTP:
		return p.validateHTTP()
	default:
		return invalidTransport(p.Transport)
	}
}

func (p Params) validateStdio() error {
	for name := range p.Env {
		if name == "" {
			return &ValidationError{
				Field:   "env",
				Message: "environment variable name must not be empty",
				Err:     ErrEmptyEnvKey,
			}
		}
	}
	if _, ok := p.Instance(); !ok {
		return &ValidationError{
			Field:   "env",
			Message: EnvInstance + " must be set to the Glean instance name",
			Err:     ErrMissingInstance,
		}
	}
	return nil
}

func (p Params) validateHTTP() error {
	if p.ServerURL == "" {
		return &ValidationError{
			Field:   "serverUrl",
			Message: "server URL is required for http transport",
			Err:     ErrMissingServerURL,
		}
	}
	u, err := url.Parse(p.ServerURL)
	if err != nil || !u.IsAbs() || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return &ValidationError{
			Field:   "serverUrl",
			Message: fmt.Sprintf("%q is not an absolute http(s) URL", p.ServerURL),
			Err:     ErrInvalidServerURL,
		}
	}
	for name := range p.Headers {
		if name == "" {
			return &ValidationError{
				Field:   "headers",
				Message: "header name must not be empty",
				Err:     ErrEmptyHeaderKey,
			}
		}
	}
	return nil
}

func invalidTransport(t Transport) error {
	return &ValidationError{
		Field:   "transport",
		Message: fmt.Sprintf("transport must be 'stdio' or 'http', got %q", string(t)),
		Err:     ErrInvalidTransport,
	}
}
