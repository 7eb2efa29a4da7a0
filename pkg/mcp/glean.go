package mcp

import (
	"fmt"
	"strings"
)

// Environment variable names read by the Glean local MCP server.
const (
	EnvInstance = "GLEAN_INSTANCE"
	EnvAPIToken = "GLEAN_API_TOKEN"
)

// HeaderAuthorization is the header that carries the bearer token.
const HeaderAuthorization = "Authorization"

const bearerPrefix = "Bearer "

// Launcher and tooling invoked through npx.
const (
	// PackageRunner is the package-runner executable used by every
	// generated process entry.
	PackageRunner = "npx"

	// LocalServerPackage is the stdio launcher for the Glean MCP server.
	LocalServerPackage = "@gleanwork/local-mcp-server"

	// BridgePackage exposes a remote HTTP MCP server over stdio.
	BridgePackage = "mcp-remote"

	// ConfigurePackage is the shared external configuration tool.
	ConfigurePackage = "@gleanwork/configure-mcp-server"
)

// Member keys under a client's server collection. They depend only on the
// transport so repeated runs merge into the same entry.
const (
	LocalServerName  = "glean_local"
	RemoteServerName = "glean_default"
)

// serverURLTemplate is the canonical backend host for an instance.
const serverURLTemplate = "https://%s-be.glean.com/mcp/default"

// GleanEnv builds the stdio environment for instance. The token entry is
// present only when a non-empty token is given.
func GleanEnv(instance string, token ...string) map[string]string {
	env := map[string]string{
		EnvInstance: strings.TrimSpace(instance),
	}
	if len(token) > 0 {
		if tok := strings.TrimSpace(token[0]); tok != "" {
			env[EnvAPIToken] = tok
		}
	}
	return env
}

// GleanHeaders builds the HTTP headers for token. It returns nil for an
// empty token so no Authorization header is emitted.
func GleanHeaders(token string) map[string]string {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return nil
	}
	return map[string]string{
		HeaderAuthorization: bearerPrefix + tok,
	}
}

// GleanServerURL returns the remote MCP endpoint for instance.
func GleanServerURL(instance string) string {
	return fmt.Sprintf(serverURLTemplate, strings.TrimSpace(instance))
}

// StdioParams returns stdio params for instance with an optional token.
func StdioParams(instance, token string) Params {
	return Params{
		Transport: TransportStdio,
		Env:       GleanEnv(instance, token),
	}
}

// HTTPParams returns http params for instance with an optional token.
func HTTPParams(instance, token string) Params {
	return Params{
		Transport: TransportHTTP,
		ServerURL: GleanServerURL(instance),
		Headers:   GleanHeaders(token),
	}
}

// NewParams returns params for transport, instance and optional token.
func NewParams(transport Transport, instance, token string) (Params, error) {
	switch transport {
	case TransportStdio:
		return StdioParams(instance, token), nil
	case TransportHTTP:
		return HTTPParams(instance, token), nil
	default:
		return Params{}, invalidTransport(transport)
	}
}
