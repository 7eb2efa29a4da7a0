package config

import (
	"testing"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/pkg/clients"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		cfg      *Config
		wantErrs []error
	}{
		{
			name: "defaults",
			cfg:  Default(),
		},
		{
			name: "fully populated",
			cfg: &Config{
				Version:   1,
				Instance:  "my-company",
				APIToken:  "my-api-token",
				Client:    "Cursor",
				Transport: "http",
				Format:    "TOML",
			},
		},
		{
			name:     "nil config",
			cfg:      nil,
			wantErrs: []error{nil},
		},
		{
			name:     "version too low",
			cfg:      &Config{Version: 0},
			wantErrs: []error{ErrVersionTooLow},
		},
		{
			name: "every field invalid",
			cfg: &Config{
				Version:   1,
				Instance:  "https://my-company",
				Client:    "notepad",
				Transport: "sse",
				Format:    "ini",
			},
			wantErrs: []error{ErrInvalidInstance, ErrInvalidTransport, ErrInvalidFormat, clients.ErrUnknownClient},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := Validate(tt.cfg)
			if len(errs) != len(tt.wantErrs) {
				t.Fatalf("Validate() returned %d errors, want %d: %v", len(errs), len(tt.wantErrs), errs)
			}
			for i, want := range tt.wantErrs {
				if want != nil && !errors.Is(errs[i], want) {
					t.Errorf("error[%d] = %v, want %v", i, errs[i], want)
				}
			}
		})
	}
}

func TestFieldError(t *testing.T) {
	err := &FieldError{Field: KeyFormat, Value: "ini", Err: ErrInvalidFormat}
	if got, want := err.Error(), "format: invalid format: ini"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Error("FieldError should unwrap to its cause")
	}
	if !errors.Is(err, errors.ErrInvalidConfig) {
		t.Error("FieldError should match ErrInvalidConfig")
	}
	if errors.Is(err, ErrInvalidTransport) {
		t.Error("FieldError should not match an unrelated field sentinel")
	}
}
