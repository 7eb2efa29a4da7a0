package commands

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// gleanEnv lists the variables that would leak a developer's own setup
// into a test run.
var gleanEnv = []string{
	"GLEAN_INSTANCE",
	"GLEAN_API_TOKEN",
	"GLEAN_CLIENT",
	"GLEAN_TRANSPORT",
	"GLEAN_FORMAT",
	"GLEAN_VERSION",
	"GLEAN_DEBUG",
}

type result struct {
	stdout string
	stderr string
	err    error
}

// isolate points every config lookup at empty temp directories and clears
// GLEAN_ variables for the duration of the test.
func isolate(t *testing.T) string {
	t.Helper()

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	for _, key := range gleanEnv {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Chdir(t.TempDir())
	return configHome
}

// resetFlags restores every flag in the command tree to its default so
// state from a previous Execute does not bleed into the next one.
func resetFlags(c *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	c.PersistentFlags().VisitAll(reset)
	c.Flags().VisitAll(reset)
	for _, sub := range c.Commands() {
		resetFlags(sub)
	}
}

// run executes the CLI with args in an isolated environment.
func run(t *testing.T, args ...string) result {
	t.Helper()
	return runWithInput(t, "", args...)
}

func runWithInput(t *testing.T, input string, args ...string) result {
	t.Helper()

	resetFlags(rootCmd)
	loaded = nil
	t.Cleanup(func() {
		resetFlags(rootCmd)
		loaded = nil
	})

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(input))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := Execute()
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

// writeConfig writes a config.yaml into the current directory.
func writeConfig(t *testing.T, body string) {
	t.Helper()
	if err := os.WriteFile("config.yaml", []byte(body), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
}
