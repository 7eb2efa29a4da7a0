package clients

import (
	"maps"
	"slices"

	"al.essio.dev/pkg/shellescape"

	"github.com/gleanwork/mcp-config-glean/pkg/mcp"
)

// Command is an install command line. A nil *Command means the client has
// no command-line installation path.
type Command struct {
	// Program is the executable, e.g. "claude" or "npx".
	Program string

	// Args are the arguments after Program, unquoted.
	Args []string
}

// Argv returns Program followed by Args.
func (c *Command) Argv() []string {
	if c == nil {
		return nil
	}
	return append([]string{c.Program}, c.Args...)
}

// String renders the command for a POSIX shell, quoting only the arguments
// that need it.
func (c *Command) String() string {
	if c == nil {
		return ""
	}
	return shellescape.QuoteCommand(c.Argv())
}

// Sub-commands of the shared configure tool.
const (
	configureLocal  = "local"
	configureRemote = "remote"
)

// configureCommand builds an invocation of @gleanwork/configure-mcp-server
// for clients without a native CLI. The params must already be validated.
func configureCommand(clientID string, p mcp.Params) *Command {
	args := []string{"-y", mcp.ConfigurePackage}

	switch p.Transport {
	case mcp.TransportHTTP:
		args = append(args, configureRemote, "--client", clientID, "--url", p.ServerURL)
		if tok, ok := p.Token(); ok {
			args = append(args, "--token", tok)
		}
	default:
		args = append(args, configureLocal, "--client", clientID)
		args = append(args, envFlags("--env", p.Env)...)
	}

	return &Command{Program: mcp.PackageRunner, Args: args}
}

// envOrder returns env names with the instance first, the token second and
// any remaining names sorted, so generated commands are stable.
func envOrder(env map[string]string) []string {
	names := make([]string, 0, len(env))
	for _, known := range []string{mcp.EnvInstance, mcp.EnvAPIToken} {
		if _, ok := env[known]; ok {
			names = append(names, known)
		}
	}
	for _, name := range slices.Sorted(maps.Keys(env)) {
		if name != mcp.EnvInstance && name != mcp.EnvAPIToken {
			names = append(names, name)
		}
	}
	return names
}

// envFlags expands env into repeated flag/value pairs in envOrder.
func envFlags(flag string, env map[string]string) []string {
	var args []string
	for _, name := range envOrder(env) {
		args = append(args, flag, name+"="+env[name])
	}
	return args
}

// headerFlags expands headers into repeated flag/value pairs sorted by name.
func headerFlags(flag string, headers map[string]string) []string {
	var args []string
	for _, name := range slices.Sorted(maps.Keys(headers)) {
		args = append(args, flag, name+": "+headers[name])
	}
	return args
}
