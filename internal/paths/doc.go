// Package paths resolves the directories mcp-config-glean reads from and
// expands the per-client configuration paths shown to users.
//
// It wraps github.com/adrg/xdg so the tool's own config file follows the
// XDG Base Directory conventions on every OS:
//
//	paths.ConfigFile() // ~/.config/mcp-config-glean/config.yaml on Linux
//
// Client paths in the catalog are written portably ("~/.cursor/mcp.json",
// `%APPDATA%\Claude\...`); [Expand] turns them into absolute paths.
package paths
