package commands

import (
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientsCommand(t *testing.T) {
	isolate(t)

	res := run(t, "clients", "--os", "linux")
	require.NoError(t, res.err, "stderr: %s", res.stderr)

	for _, want := range []string{
		"claude-code", "Claude Code", "native_cli", "~/.claude.json",
		"cursor", "command_builder", "~/.cursor/mcp.json",
		"goose", "yaml",
		"codex", "toml",
		"chatgpt", "web_ui_only",
		"claude-teams-enterprise", "admin_managed",
		"jetbrains",
	} {
		assert.Contains(t, res.stdout, want)
	}
	assert.Contains(t, res.stdout, "jetbrains: JetBrains AI Assistant has no configuration file path")
	assert.Contains(t, res.stdout, "chatgpt: ChatGPT is web-based")
}

func TestClientsCommand_OS(t *testing.T) {
	isolate(t)

	res := run(t, "clients", "--os", "windows")
	require.NoError(t, res.err, "stderr: %s", res.stderr)
	assert.Contains(t, res.stdout, `%APPDATA%\Claude\claude_desktop_config.json`)

	res = run(t, "clients", "--os", "darwin")
	require.NoError(t, res.err, "stderr: %s", res.stderr)
	assert.Contains(t, res.stdout, "~/Library/Application Support/Claude/claude_desktop_config.json")
	assert.False(t, strings.Contains(res.stdout, "%APPDATA%"))
}

func TestClientsCommand_ValidatesConfig(t *testing.T) {
	isolate(t)
	t.Setenv("GLEAN_TRANSPORT", "carrier-pigeon")

	res := run(t, "clients")
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "transport")
}

func TestClientsCommand_Expand(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("home layout differs on windows")
	}
	isolate(t)
	home := t.TempDir()
	t.Setenv("HOME", home)

	res := run(t, "clients", "--expand")
	require.NoError(t, res.err, "stderr: %s", res.stderr)
	assert.Contains(t, res.stdout, filepath.Join(home, ".cursor", "mcp.json"))
	assert.NotContains(t, res.stdout, "~/.cursor")
}

func TestClientsCommand_ExpandOtherOS(t *testing.T) {
	isolate(t)
	other := "windows"
	if runtime.GOOS == "windows" {
		other = "linux"
	}

	res := run(t, "clients", "--expand", "--os", other)
	require.Error(t, res.err)
	assert.Contains(t, res.stderr, "Drop --expand or --os")
}
