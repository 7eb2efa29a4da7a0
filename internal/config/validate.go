package config

import (
	"strings"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/pkg/clients"
	"github.com/gleanwork/mcp-config-glean/pkg/mcp"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidTransport indicates an unrecognised transport name.
	ErrInvalidTransport = errors.New("invalid transport")

	// ErrInvalidFormat indicates an unrecognised output format.
	ErrInvalidFormat = errors.New("invalid format")

	// ErrInvalidInstance indicates an instance name that cannot appear in a
	// Glean hostname.
	ErrInvalidInstance = errors.New("invalid instance")
)

// Formats lists the accepted values of the format key.
func Formats() []string {
	return []string{
		FormatNative,
		string(clients.FormatJSON),
		string(clients.FormatJSONC),
		string(clients.FormatYAML),
		string(clients.FormatTOML),
	}
}

// Validate checks a Config and returns every problem found.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if cfg.Instance != "" && strings.ContainsAny(cfg.Instance, " /:\t") {
		errs = append(errs, &FieldError{Field: KeyInstance, Value: cfg.Instance, Err: ErrInvalidInstance})
	}

	if cfg.Transport != "" {
		if _, err := mcp.ParseTransport(cfg.Transport); err != nil {
			errs = append(errs, &FieldError{Field: KeyTransport, Value: cfg.Transport, Err: ErrInvalidTransport})
		}
	}

	if cfg.Format != "" && !validFormat(cfg.Format) {
		errs = append(errs, &FieldError{Field: KeyFormat, Value: cfg.Format, Err: ErrInvalidFormat})
	}

	if cfg.Client != "" {
		if _, ok := clients.Default().Profile(cfg.Client); !ok {
			errs = append(errs, &FieldError{Field: KeyClient, Value: cfg.Client, Err: clients.ErrUnknownClient})
		}
	}

	return errs
}

func validFormat(format string) bool {
	for _, f := range Formats() {
		if strings.EqualFold(f, format) {
			return true
		}
	}
	return false
}

// FieldError reports an invalid value for one config key.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// Is matches errors.ErrInvalidConfig for every field.
func (e *FieldError) Is(target error) bool {
	return target == errors.ErrInvalidConfig
}
