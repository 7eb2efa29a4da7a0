package clients

import (
	"fmt"
	"strings"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
)

// Sentinel errors for registry and builder operations.
var (
	// ErrUnknownClient indicates the client id matches no registered profile.
	ErrUnknownClient = errors.New("unknown client")

	// ErrUnsupportedClient indicates the client is known but cannot be
	// configured locally.
	ErrUnsupportedClient = errors.New("client cannot be configured locally")

	// ErrInvalidProfile indicates a profile violates the catalog invariants.
	ErrInvalidProfile = errors.New("invalid client profile")

	// ErrDuplicateClient indicates two profiles share an id.
	ErrDuplicateClient = errors.New("client already registered")

	// ErrTransportNotSupported indicates the client cannot represent the
	// requested transport.
	ErrTransportNotSupported = errors.New("transport not supported by client")
)

// UnknownClientError is returned by CreateBuilder for an unregistered id.
type UnknownClientError struct {
	// ClientID is the id that was requested.
	ClientID string

	// Supported lists the ids a builder can be created for.
	Supported []string
}

func (e *UnknownClientError) Error() string {
	if len(e.Supported) == 0 {
		return fmt.Sprintf("unknown client %q", e.ClientID)
	}
	return fmt.Sprintf("unknown client %q (supported: %s)", e.ClientID, strings.Join(e.Supported, ", "))
}

// Unwrap returns ErrUnknownClient.
func (e *UnknownClientError) Unwrap() error {
	return ErrUnknownClient
}

// UnsupportedClientError is returned by CreateBuilder for a client that has
// no local configuration path. Kind distinguishes web-UI-only clients from
// admin-managed ones; Message is the explanation shown to the user.
type UnsupportedClientError struct {
	ClientID    string
	DisplayName string
	Kind        Availability
	Message     string
}

func (e *UnsupportedClientError) Error() string {
	return e.Message
}

// Unwrap returns ErrUnsupportedClient.
func (e *UnsupportedClientError) Unwrap() error {
	return ErrUnsupportedClient
}
