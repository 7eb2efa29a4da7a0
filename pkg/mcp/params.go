package mcp

import (
	"maps"
	"strings"
)

// Transport identifies how a client reaches the Glean MCP server.
type Transport string

// Transport values.
const (
	// TransportStdio runs a local launcher process and talks over stdin/stdout.
	TransportStdio Transport = "stdio"

	// TransportHTTP connects directly to the remote streamable HTTP endpoint.
	TransportHTTP Transport = "http"
)

// Transports returns all transports in a stable order.
func Transports() []Transport {
	return []Transport{TransportStdio, TransportHTTP}
}

// Valid reports whether t is a known transport.
func (t Transport) Valid() bool {
	return t == TransportStdio || t == TransportHTTP
}

// String implements fmt.Stringer.
func (t Transport) String() string {
	return string(t)
}

// ParseTransport converts a user supplied string into a Transport.
// Matching is case-insensitive and "streamable-http" is accepted as an
// alias for http.
func ParseTransport(s string) (Transport, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stdio", "local":
		return TransportStdio, nil
	case "http", "remote", "streamable-http", "streamable_http":
		return TransportHTTP, nil
	default:
		return "", invalidTransport(Transport(s))
	}
}

// Params is the client-agnostic description of one Glean MCP connection.
//
// Only the fields selected by Transport are meaningful: Env for stdio,
// ServerURL and Headers for http. The others are ignored.
type Params struct {
	// Transport selects stdio or http.
	Transport Transport

	// Env holds the launcher environment for stdio: GLEAN_INSTANCE always,
	// GLEAN_API_TOKEN only when a token was supplied.
	Env map[string]string

	// ServerURL is the absolute endpoint for http.
	ServerURL string

	// Headers holds HTTP headers for http, typically a bearer Authorization
	// header. Nil when no token was supplied.
	Headers map[string]string
}

// Token returns the API token carried by p for its transport.
//
// For stdio it is the GLEAN_API_TOKEN env entry. For http it is the value of
// the Authorization header with any "Bearer " prefix removed; a non-bearer
// value is returned unchanged.
func (p Params) Token() (string, bool) {
	switch p.Transport {
	case TransportStdio:
		tok, ok := p.Env[EnvAPIToken]
		return tok, ok && tok != ""
	case TransportHTTP:
		for name, value := range p.Headers {
			if !strings.EqualFold(name, HeaderAuthorization) {
				continue
			}
			tok := strings.TrimSpace(value)
			if len(tok) > len(bearerPrefix) && strings.EqualFold(tok[:len(bearerPrefix)], bearerPrefix) {
				tok = strings.TrimSpace(tok[len(bearerPrefix):])
			}
			return tok, tok != ""
		}
	}
	return "", false
}

// Instance returns the GLEAN_INSTANCE env entry, if any.
func (p Params) Instance() (string, bool) {
	inst, ok := p.Env[EnvInstance]
	return inst, ok && inst != ""
}

// Clone returns a deep copy of p so callers can hand it to concurrent
// builders without sharing maps.
func (p Params) Clone() Params {
	return Params{
		Transport: p.Transport,
		Env:       maps.Clone(p.Env),
		ServerURL: p.ServerURL,
		Headers:   maps.Clone(p.Headers),
	}
}
