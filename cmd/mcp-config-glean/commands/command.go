package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/internal/logging"
	"github.com/gleanwork/mcp-config-glean/internal/redact"
	"github.com/gleanwork/mcp-config-glean/pkg/clients"
)

func init() {
	addConnectionFlags(commandCmd)
	rootCmd.AddCommand(commandCmd)
}

var commandCmd = &cobra.Command{
	Use:   "command",
	Short: "Print the shell command that installs the MCP server for a client",
	Long: `Print a shell command that registers Glean with a client.

Clients with their own CLI (claude, codex, code) get a native command.
Other clients get an npx invocation of @gleanwork/configure-mcp-server.
Clients without a config file path, such as JetBrains, have no command;
use 'mcp-config-glean config' and paste the output into their settings.

Tokens are masked unless --show-secrets is given, so pass --show-secrets
when the output is meant to be run.`,
	Example: `  mcp-config-glean command --client claude-code --instance my-company
  mcp-config-glean command -c cursor -t http -i my-company --token $TOKEN --show-secrets`,
	Args: cobra.NoArgs,
	RunE: runCommand,
}

func runCommand(c *cobra.Command, _ []string) error {
	logger := logging.FromContext(c.Context())

	b, err := resolveBuilder(c)
	if err != nil {
		if cancelled(err) {
			return nil
		}
		return err
	}
	params, err := connectionParams()
	if err != nil {
		return err
	}

	status := b.SupportsCLIInstallation()
	logger.Debug("building install command",
		"client", b.ClientID(),
		"transport", params.Transport,
		"reason", status.Reason,
	)

	install, err := b.BuildCommand(params)
	if err != nil {
		return buildError(err)
	}
	if install == nil {
		return errors.NewUserError(
			errors.Newf("%s has no command-line installation: %s", b.Profile().DisplayName, status.Message),
			"Run: mcp-config-glean config --client "+b.ClientID(),
		)
	}
	logger.Log(c.Context(), logging.LevelTrace, "install command built", "argv", redact.Args(install.Argv()))

	_, err = fmt.Fprintln(c.OutOrStdout(), displayCommand(install).String())
	return errors.Wrap(err, "writing command")
}

func displayCommand(install *clients.Command) *clients.Command {
	if showSecrets {
		return install
	}
	return &clients.Command{Program: install.Program, Args: redact.Args(install.Args)}
}
