package clients

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleanwork/mcp-config-glean/pkg/mcp"
)

var launcherArgs = []string{"-y", "@gleanwork/local-mcp-server"}

var (
	fullEnv  = map[string]string{mcp.EnvInstance: testInstance, mcp.EnvAPIToken: testToken}
	oauthEnv = map[string]string{mcp.EnvInstance: testInstance}
	bearer   = map[string]string{"Authorization": "Bearer " + testToken}
)

func TestCatalog_Configurations(t *testing.T) {
	tests := []struct {
		client    string
		params    mcp.Params
		wantName  string
		wantEntry map[string]any
	}{
		// claude-code
		{
			client:   ClaudeCode,
			params:   stdioWithToken(),
			wantName: "glean_local",
			wantEntry: map[string]any{
				"type": "stdio", "command": "npx", "args": launcherArgs, "env": fullEnv,
			},
		},
		{
			client:   ClaudeCode,
			params:   httpWithToken(),
			wantName: "glean_default",
			wantEntry: map[string]any{
				"type": "http", "url": testURL, "headers": bearer,
			},
		},
		{
			client:    ClaudeCode,
			params:    httpOAuth(),
			wantName:  "glean_default",
			wantEntry: map[string]any{"type": "http", "url": testURL},
		},
		// claude-desktop bridges http through mcp-remote
		{
			client:   ClaudeDesktop,
			params:   stdioOAuth(),
			wantName: "glean_local",
			wantEntry: map[string]any{
				"type": "stdio", "command": "npx", "args": launcherArgs, "env": oauthEnv,
			},
		},
		{
			client:   ClaudeDesktop,
			params:   httpWithToken(),
			wantName: "glean_default",
			wantEntry: map[string]any{
				"type":    "stdio",
				"command": "npx",
				"args":    []string{"-y", "mcp-remote", testURL, "--header", "Authorization: Bearer " + testToken},
			},
		},
		{
			client:   ClaudeDesktop,
			params:   httpOAuth(),
			wantName: "glean_default",
			wantEntry: map[string]any{
				"type": "stdio", "command": "npx", "args": []string{"-y", "mcp-remote", testURL},
			},
		},
		// cursor
		{
			client:   Cursor,
			params:   stdioWithToken(),
			wantName: "glean_local",
			wantEntry: map[string]any{
				"type": "stdio", "command": "npx", "args": launcherArgs, "env": fullEnv,
			},
		},
		{
			client:    Cursor,
			params:    httpOAuth(),
			wantName:  "glean_default",
			wantEntry: map[string]any{"type": "http", "url": testURL},
		},
		// windsurf uses serverUrl
		{
			client:   Windsurf,
			params:   httpWithToken(),
			wantName: "glean_default",
			wantEntry: map[string]any{
				"serverUrl": testURL, "headers": bearer,
			},
		},
		{
			client:   Windsurf,
			params:   stdioOAuth(),
			wantName: "glean_local",
			wantEntry: map[string]any{
				"command": "npx", "args": launcherArgs, "env": oauthEnv,
			},
		},
		// vscode
		{
			client:   VSCode,
			params:   stdioWithToken(),
			wantName: "glean_local",
			wantEntry: map[string]any{
				"type": "stdio", "command": "npx", "args": launcherArgs, "env": fullEnv,
			},
		},
		{
			client:   VSCode,
			params:   httpWithToken(),
			wantName: "glean_default",
			wantEntry: map[string]any{
				"type": "http", "url": testURL, "headers": bearer,
			},
		},
		// gemini uses httpUrl
		{
			client:   Gemini,
			params:   httpWithToken(),
			wantName: "glean_default",
			wantEntry: map[string]any{
				"httpUrl": testURL, "headers": bearer,
			},
		},
		{
			client:    Gemini,
			params:    httpOAuth(),
			wantName:  "glean_default",
			wantEntry: map[string]any{"httpUrl": testURL},
		},
		// goose uses extensions with cmd/envs/uri
		{
			client:   Goose,
			params:   stdioWithToken(),
			wantName: "glean_local",
			wantEntry: map[string]any{
				"name": "glean_local", "type": "stdio", "cmd": "npx", "args": launcherArgs,
				"envs": fullEnv, "enabled": true, "timeout": 300,
			},
		},
		{
			client:   Goose,
			params:   httpWithToken(),
			wantName: "glean_default",
			wantEntry: map[string]any{
				"name": "glean_default", "type": "streamable_http", "uri": testURL,
				"headers": bearer, "enabled": true, "timeout": 300,
			},
		},
		// codex uses snake_case
		{
			client:   Codex,
			params:   stdioWithToken(),
			wantName: "glean_local",
			wantEntry: map[string]any{
				"command": "npx", "args": launcherArgs, "env": fullEnv,
			},
		},
		{
			client:   Codex,
			params:   stdioOAuth(),
			wantName: "glean_local",
			wantEntry: map[string]any{
				"command": "npx", "args": launcherArgs, "env": oauthEnv,
			},
		},
		{
			client:   Codex,
			params:   httpWithToken(),
			wantName: "glean_default",
			wantEntry: map[string]any{
				"url": testURL, "http_headers": bearer,
			},
		},
		// jetbrains still builds configuration for manual paste
		{
			client:   JetBrains,
			params:   stdioWithToken(),
			wantName: "glean_local",
			wantEntry: map[string]any{
				"command": "npx", "args": launcherArgs, "env": fullEnv,
			},
		},
		{
			client:   JetBrains,
			params:   httpWithToken(),
			wantName: "glean_default",
			wantEntry: map[string]any{
				"url": testURL, "headers": bearer,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.client+"/"+string(tt.params.Transport), func(t *testing.T) {
			b := mustBuilder(t, tt.client)
			name, entry := mustEntry(t, b, tt.params)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantEntry, entry)
		})
	}
}

func TestCatalog_RootKeys(t *testing.T) {
	want := map[string]string{
		ClaudeCode:    "mcpServers",
		ClaudeDesktop: "mcpServers",
		Cursor:        "mcpServers",
		Windsurf:      "mcpServers",
		VSCode:        "servers",
		Gemini:        "mcpServers",
		Goose:         "extensions",
		Codex:         "mcp_servers",
		JetBrains:     "mcpServers",
	}
	for id, rootKey := range want {
		t.Run(id, func(t *testing.T) {
			cfg, err := mustBuilder(t, id).BuildConfiguration(stdioOAuth())
			require.NoError(t, err)
			assert.Contains(t, cfg, rootKey)
		})
	}
}

func TestCatalog_NativeCommands(t *testing.T) {
	tests := []struct {
		client string
		params mcp.Params
		want   string
	}{
		{
			client: ClaudeCode,
			params: stdioWithToken(),
			want: "claude mcp add glean_local --scope user " +
				"--env GLEAN_INSTANCE=my-company --env GLEAN_API_TOKEN=my-api-token " +
				"-- npx -y @gleanwork/local-mcp-server",
		},
		{
			client: ClaudeCode,
			params: stdioOAuth(),
			want: "claude mcp add glean_local --scope user --env GLEAN_INSTANCE=my-company " +
				"-- npx -y @gleanwork/local-mcp-server",
		},
		{
			client: ClaudeCode,
			params: httpWithToken(),
			want: "claude mcp add --transport http glean_default " + testURL +
				" --scope user --header 'Authorization: Bearer my-api-token'",
		},
		{
			client: ClaudeCode,
			params: httpOAuth(),
			want:   "claude mcp add --transport http glean_default " + testURL + " --scope user",
		},
		{
			client: Codex,
			params: stdioWithToken(),
			want: "codex mcp add glean_local " +
				"--env GLEAN_INSTANCE=my-company --env GLEAN_API_TOKEN=my-api-token " +
				"-- npx -y @gleanwork/local-mcp-server",
		},
		{
			client: Codex,
			params: httpWithToken(),
			want:   "codex mcp add glean_default --url " + testURL,
		},
		{
			client: VSCode,
			params: stdioWithToken(),
			want: `code --add-mcp '{"args":["-y","@gleanwork/local-mcp-server"],"command":"npx",` +
				`"env":{"GLEAN_API_TOKEN":"my-api-token","GLEAN_INSTANCE":"my-company"},` +
				`"name":"glean_local","type":"stdio"}'`,
		},
		{
			client: VSCode,
			params: httpOAuth(),
			want:   `code --add-mcp '{"name":"glean_default","type":"http","url":"` + testURL + `"}'`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.client+"/"+string(tt.params.Transport), func(t *testing.T) {
			got := mustCommand(t, mustBuilder(t, tt.client), tt.params)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCatalog_CommandBuilderClients(t *testing.T) {
	for _, id := range []string{ClaudeDesktop, Cursor, Windsurf, Gemini, Goose} {
		t.Run(id, func(t *testing.T) {
			b := mustBuilder(t, id)

			local := mustCommand(t, b, stdioWithToken())
			assert.Contains(t, local, "npx -y @gleanwork/configure-mcp-server local")
			assert.Contains(t, local, "--client "+id)
			assert.Contains(t, local, "--env GLEAN_INSTANCE=my-company")
			assert.Contains(t, local, "--env GLEAN_API_TOKEN=my-api-token")

			localOAuth := mustCommand(t, b, stdioOAuth())
			assert.Contains(t, localOAuth, "--env GLEAN_INSTANCE=my-company")
			assert.NotContains(t, localOAuth, "GLEAN_API_TOKEN")

			remote := mustCommand(t, b, httpWithToken())
			assert.Contains(t, remote, "npx -y @gleanwork/configure-mcp-server remote")
			assert.Contains(t, remote, "--url "+testURL)
			assert.Contains(t, remote, "--client "+id)
			assert.Contains(t, remote, "--token my-api-token")

			remoteOAuth := mustCommand(t, b, httpOAuth())
			assert.Contains(t, remoteOAuth, "remote")
			assert.Contains(t, remoteOAuth, "--url "+testURL)
			assert.NotContains(t, remoteOAuth, "--token")

			status := b.SupportsCLIInstallation()
			assert.True(t, status.Supported)
			assert.Equal(t, ReasonCommandBuilder, status.Reason)
		})
	}
}

func TestCatalog_JetBrainsHasNoCommand(t *testing.T) {
	b := mustBuilder(t, JetBrains)
	for name, p := range allParams() {
		t.Run(name, func(t *testing.T) {
			cmd, err := b.BuildCommand(p)
			require.NoError(t, err)
			assert.Nil(t, cmd)
		})
	}

	status := b.SupportsCLIInstallation()
	assert.False(t, status.Supported)
	assert.Equal(t, ReasonNoConfigPath, status.Reason)
	assert.NotEmpty(t, status.Message)
	assert.Empty(t, b.Profile().ConfigPath("darwin"))
}

func TestCatalog_NativeCLIStatus(t *testing.T) {
	for _, id := range []string{ClaudeCode, Codex, VSCode} {
		t.Run(id, func(t *testing.T) {
			status := mustBuilder(t, id).SupportsCLIInstallation()
			assert.True(t, status.Supported)
			assert.Equal(t, ReasonNativeCLI, status.Reason)
			assert.Empty(t, status.Message)
		})
	}
}

func TestCatalog_ConfigPaths(t *testing.T) {
	for _, p := range Default().Profiles() {
		if !p.IsConfigurable() || p.CLI.Mode == CLIUnsupported {
			continue
		}
		t.Run(p.ID, func(t *testing.T) {
			for _, goos := range []string{"darwin", "linux", "windows"} {
				assert.NotEmpty(t, p.ConfigPath(goos), "missing %s config path", goos)
			}
		})
	}
}
