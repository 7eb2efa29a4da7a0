package commands

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gleanwork/mcp-config-glean/cmd"
)

func TestVersionCommand(t *testing.T) {
	isolate(t)

	res := run(t, "version")
	require.NoError(t, res.err)
	assert.Contains(t, res.stdout, "mcp-config-glean version "+cmd.Version)
	assert.Contains(t, res.stdout, "commit:")
	assert.Contains(t, res.stdout, runtime.Version())
	assert.Contains(t, res.stdout, "configurable")
}

func TestVersionCommand_SkipsConfig(t *testing.T) {
	isolate(t)
	writeConfig(t, "version: 0\n")

	res := run(t, "version")
	require.NoError(t, res.err, "stderr: %s", res.stderr)
}

func TestVersionFlag(t *testing.T) {
	isolate(t)

	res := run(t, "--version")
	require.NoError(t, res.err)
	assert.Equal(t, "mcp-config-glean version "+cmd.Version+"\n", res.stdout)
}
