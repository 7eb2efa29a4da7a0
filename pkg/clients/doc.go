// Package clients turns one [mcp.Params] value into the configuration and
// install command each supported MCP client expects.
//
// Every client is described by a [Profile]: its root key, field names, case
// convention, transport capability and command-line strategy. The
// transformation itself lives once, in [Builder], and is driven entirely by
// the profile. Adding a client means adding one entry to [Catalog].
//
// # Building Configuration
//
//	b, err := clients.CreateBuilder("cursor")
//	if err != nil {
//	    return err
//	}
//	cfg, err := b.BuildConfiguration(mcp.StdioParams("my-company", "my-api-token"))
//	// cfg == {"mcpServers": {"glean_local": {"type": "stdio", "command": "npx", ...}}}
//
// The member key depends only on the transport (glean_local for stdio,
// glean_default for http), so regenerating the config for the same
// transport always targets the same entry.
//
// # Install Commands
//
// [Builder.BuildCommand] dispatches on the profile's [CLIMode]:
//
//   - [CLINative]: the client's own syntax, e.g. `claude mcp add ...`
//   - [CLICommandBuilder]: `npx -y @gleanwork/configure-mcp-server local|remote --client <id> ...`
//   - [CLIUnsupported]: nil, the configuration has to be pasted manually
//
// Native commands are rendered from the same canonical [mcp.Server] and
// entry that BuildConfiguration returns, so the two never disagree.
//
// # Bridged HTTP
//
// Clients that cannot speak HTTP (Claude Desktop) get a stdio entry that
// runs mcp-remote with the server URL and the Authorization header as
// arguments.
//
// # Refused Clients
//
// Some clients have no local configuration surface at all. [Registry.CreateBuilder]
// returns an [*UnsupportedClientError] for them, with Kind set to
// [WebUIOnly] or [AdminManaged] and a message explaining where the server
// has to be configured instead. Unknown ids yield an [*UnknownClientError].
//
// # Thread Safety
//
// The registry is frozen at construction and builders hold no mutable
// state. All functions and methods in this package are safe for concurrent
// use.
package clients
