package clients

import (
	"encoding/json"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/pkg/mcp"
)

// Client identifiers.
const (
	ClaudeCode            = "claude-code"
	ClaudeDesktop         = "claude-desktop"
	ClaudeTeamsEnterprise = "claude-teams-enterprise"
	ChatGPT               = "chatgpt"
	Codex                 = "codex"
	Cursor                = "cursor"
	Gemini                = "gemini"
	Goose                 = "goose"
	JetBrains             = "jetbrains"
	VSCode                = "vscode"
	Windsurf              = "windsurf"
)

// Common transport discriminators.
var (
	stdioAndHTTPTypes = map[mcp.Transport]string{
		mcp.TransportStdio: "stdio",
		mcp.TransportHTTP:  "http",
	}
	stdioOnlyType = map[mcp.Transport]string{
		mcp.TransportStdio: "stdio",
	}
)

var (
	nativeHTTP = TransportSupport{Stdio: true, HTTPNative: true}
	bridgeHTTP = TransportSupport{Stdio: true, HTTPBridge: true}
)

// sameOnAllPlatforms returns a ConfigPaths map with one path for every OS.
func sameOnAllPlatforms(path string) map[string]string {
	return map[string]string{
		"darwin":  path,
		"linux":   path,
		"windows": path,
	}
}

// Catalog returns the built-in client profiles in display order.
func Catalog() []Profile {
	return []Profile{
		{
			ID:            ClaudeCode,
			DisplayName:   "Claude Code",
			ConfigRootKey: "mcpServers",
			Transports:    nativeHTTP,
			TypeField:     stdioAndHTTPTypes,
			CLI:           CLIInstall{Mode: CLINative, Native: claudeCodeCommand},
			ConfigFormat:  FormatJSON,
			ConfigPaths:   sameOnAllPlatforms("~/.claude.json"),
		},
		{
			ID:            ClaudeDesktop,
			DisplayName:   "Claude Desktop",
			ConfigRootKey: "mcpServers",
			Transports:    bridgeHTTP,
			TypeField:     stdioOnlyType,
			CLI:           CLIInstall{Mode: CLICommandBuilder},
			ConfigFormat:  FormatJSON,
			ConfigPaths: map[string]string{
				"darwin":  "~/Library/Application Support/Claude/claude_desktop_config.json",
				"linux":   "~/.config/Claude/claude_desktop_config.json",
				"windows": `%APPDATA%\Claude\claude_desktop_config.json`,
			},
		},
		{
			ID:            Cursor,
			DisplayName:   "Cursor",
			ConfigRootKey: "mcpServers",
			Transports:    nativeHTTP,
			TypeField:     stdioAndHTTPTypes,
			CLI:           CLIInstall{Mode: CLICommandBuilder},
			ConfigFormat:  FormatJSON,
			ConfigPaths:   sameOnAllPlatforms("~/.cursor/mcp.json"),
		},
		{
			ID:            Windsurf,
			DisplayName:   "Windsurf",
			ConfigRootKey: "mcpServers",
			Transports:    nativeHTTP,
			FieldMap:      map[string]string{"url": "serverUrl"},
			CLI:           CLIInstall{Mode: CLICommandBuilder},
			ConfigFormat:  FormatJSON,
			ConfigPaths:   sameOnAllPlatforms("~/.codeium/windsurf/mcp_config.json"),
		},
		{
			ID:            VSCode,
			DisplayName:   "Visual Studio Code",
			ConfigRootKey: "servers",
			Transports:    nativeHTTP,
			TypeField:     stdioAndHTTPTypes,
			CLI:           CLIInstall{Mode: CLINative, Native: vscodeCommand},
			ConfigFormat:  FormatJSONC,
			ConfigPaths: map[string]string{
				"darwin":  "~/Library/Application Support/Code/User/mcp.json",
				"linux":   "~/.config/Code/User/mcp.json",
				"windows": `%APPDATA%\Code\User\mcp.json`,
			},
		},
		{
			ID:            Gemini,
			DisplayName:   "Gemini CLI",
			ConfigRootKey: "mcpServers",
			Transports:    nativeHTTP,
			FieldMap:      map[string]string{"url": "httpUrl"},
			CLI:           CLIInstall{Mode: CLICommandBuilder},
			ConfigFormat:  FormatJSON,
			ConfigPaths:   sameOnAllPlatforms("~/.gemini/settings.json"),
		},
		{
			ID:            Goose,
			DisplayName:   "Goose",
			ConfigRootKey: "extensions",
			KeyNaming:     NamingSnake,
			Transports:    nativeHTTP,
			TypeField: map[mcp.Transport]string{
				mcp.TransportStdio: "stdio",
				mcp.TransportHTTP:  "streamable_http",
			},
			FieldMap: map[string]string{
				"command": "cmd",
				"env":     "envs",
				"url":     "uri",
			},
			NameField: "name",
			StaticFields: map[string]any{
				"enabled": true,
				"timeout": 300,
			},
			CLI:          CLIInstall{Mode: CLICommandBuilder},
			ConfigFormat: FormatYAML,
			ConfigPaths: map[string]string{
				"darwin":  "~/.config/goose/config.yaml",
				"linux":   "~/.config/goose/config.yaml",
				"windows": `%APPDATA%\Block\goose\config\config.yaml`,
			},
		},
		{
			ID:            Codex,
			DisplayName:   "Codex",
			ConfigRootKey: "mcp_servers",
			KeyNaming:     NamingSnake,
			Transports:    nativeHTTP,
			FieldMap:      map[string]string{"headers": "httpHeaders"},
			CLI:           CLIInstall{Mode: CLINative, Native: codexCommand},
			ConfigFormat:  FormatTOML,
			ConfigPaths:   sameOnAllPlatforms("~/.codex/config.toml"),
		},
		{
			ID:            JetBrains,
			DisplayName:   "JetBrains AI Assistant",
			ConfigRootKey: "mcpServers",
			Transports:    nativeHTTP,
			CLI: CLIInstall{
				Mode: CLIUnsupported,
				Reason: "JetBrains AI Assistant has no configuration file path. " +
					"Paste the configuration into Settings | Tools | AI Assistant | Model Context Protocol (MCP).",
			},
			ConfigFormat: FormatJSON,
		},
		{
			ID:           ChatGPT,
			DisplayName:  "ChatGPT",
			Availability: WebUIOnly,
			Message: "ChatGPT is web-based and requires configuring MCP servers through their web UI. " +
				"No local configuration file or CLI is available.",
		},
		{
			ID:           ClaudeTeamsEnterprise,
			DisplayName:  "Claude for Teams/Enterprise",
			Availability: AdminManaged,
			Message: "Claude for Teams/Enterprise has MCP servers centrally managed by admins in the organization settings. " +
				"Individual users cannot add servers locally; ask your administrator to add the Glean connector.",
		},
	}
}

// claudeCodeCommand renders `claude mcp add` for user scope.
func claudeCodeCommand(in NativeInput) (*Command, error) {
	s := in.Server
	args := []string{"mcp", "add"}
	if s.IsRemote() {
		args = append(args, "--transport", "http", s.Name, s.URL, "--scope", "user")
		args = append(args, headerFlags("--header", s.Headers)...)
		return &Command{Program: "claude", Args: args}, nil
	}

	args = append(args, s.Name, "--scope", "user")
	args = append(args, envFlags("--env", s.Env)...)
	args = append(args, "--", s.Command)
	args = append(args, s.Args...)
	return &Command{Program: "claude", Args: args}, nil
}

// codexCommand renders `codex mcp add`. Codex reads bearer tokens from its
// config file or an env var, so headers are not part of the command.
func codexCommand(in NativeInput) (*Command, error) {
	s := in.Server
	args := []string{"mcp", "add", s.Name}
	if s.IsRemote() {
		args = append(args, "--url", s.URL)
		return &Command{Program: "codex", Args: args}, nil
	}

	args = append(args, envFlags("--env", s.Env)...)
	args = append(args, "--", s.Command)
	args = append(args, s.Args...)
	return &Command{Program: "codex", Args: args}, nil
}

// vscodeCommand renders `code --add-mcp <json>` where json is the entry
// written to mcp.json plus its name.
func vscodeCommand(in NativeInput) (*Command, error) {
	payload := make(map[string]any, len(in.Entry)+1)
	for k, v := range in.Entry {
		payload[k] = v
	}
	payload["name"] = in.Server.Name

	data, err := json.Marshal(payload)
	if err != nil {
		return nil, errors.Wrap(err, "encoding --add-mcp payload")
	}
	return &Command{Program: "code", Args: []string{"--add-mcp", string(data)}}, nil
}
