package clients

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gleanwork/mcp-config-glean/pkg/mcp"
)

const (
	testInstance = "my-company"
	testToken    = "my-api-token"
	testURL      = "https://my-company-be.glean.com/mcp/default"
)

func stdioWithToken() mcp.Params { return mcp.StdioParams(testInstance, testToken) }
func stdioOAuth() mcp.Params     { return mcp.StdioParams(testInstance, "") }
func httpWithToken() mcp.Params  { return mcp.HTTPParams(testInstance, testToken) }
func httpOAuth() mcp.Params      { return mcp.HTTPParams(testInstance, "") }

// allParams is every well-formed params shape the builders must accept.
func allParams() map[string]mcp.Params {
	return map[string]mcp.Params{
		"stdio with token": stdioWithToken(),
		"stdio oauth":      stdioOAuth(),
		"http with token":  httpWithToken(),
		"http oauth":       httpOAuth(),
	}
}

func mustBuilder(t *testing.T, id string) *Builder {
	t.Helper()
	b, err := CreateBuilder(id)
	require.NoError(t, err, "CreateBuilder(%q)", id)
	return b
}

// mustEntry builds the configuration and returns its single member.
func mustEntry(t *testing.T, b *Builder, p mcp.Params) (string, map[string]any) {
	t.Helper()
	cfg, err := b.BuildConfiguration(p)
	require.NoError(t, err)

	rootKey := b.Profile().ConfigRootKey
	require.Contains(t, cfg, rootKey)
	require.Len(t, cfg, 1, "config must have exactly one root key")

	name, entry, ok := cfg.Entry(rootKey)
	require.True(t, ok, "config must have exactly one member under %q", rootKey)
	return name, entry
}

func mustCommand(t *testing.T, b *Builder, p mcp.Params) string {
	t.Helper()
	cmd, err := b.BuildCommand(p)
	require.NoError(t, err)
	require.NotNil(t, cmd, "BuildCommand() returned nil")
	return cmd.String()
}
