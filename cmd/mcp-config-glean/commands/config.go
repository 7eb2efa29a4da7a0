package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/internal/logging"
	"github.com/gleanwork/mcp-config-glean/internal/redact"
	"github.com/gleanwork/mcp-config-glean/internal/render"
	"github.com/gleanwork/mcp-config-glean/pkg/clients"
)

func init() {
	addConnectionFlags(configCmd)
	configCmd.Flags().String("format", "", "output format: native, json, jsonc, yaml, toml (default: the client's own)")
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the MCP server configuration for a client",
	Long: `Print the configuration snippet that connects a client to Glean, in the
format of the client's own config file. The output holds exactly one server
entry: glean_local for stdio, glean_default for http.

Tokens are masked unless --show-secrets is given.`,
	Example: `  mcp-config-glean config --client cursor --instance my-company
  mcp-config-glean config -c goose -t http -i my-company --token $TOKEN --show-secrets
  mcp-config-glean config -c vscode -i my-company --format json`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(c *cobra.Command, _ []string) error {
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

	format, err := render.ParseFormat(loaded.Format)
	if err != nil {
		return errors.NewUserError(err, "Use --format native, json, jsonc, yaml or toml")
	}
	if format == "" {
		format = b.Profile().ConfigFormat
	}

	logger.Debug("building configuration",
		"client", b.ClientID(),
		"transport", params.Transport,
		"format", format,
	)
	cfg, err := b.BuildConfiguration(params)
	if err != nil {
		return buildError(err)
	}
	logger.Log(c.Context(), logging.LevelTrace, "configuration built", "config", redact.Config(cfg))

	out, err := render.MarshalWithComment(displayConfig(cfg), format, configComment(b.Profile()))
	if err != nil {
		return errors.NewSystemError(err, "")
	}
	_, err = c.OutOrStdout().Write(out)
	return errors.Wrap(err, "writing configuration")
}

func displayConfig(cfg clients.Config) map[string]any {
	if showSecrets {
		return cfg
	}
	return redact.Config(cfg)
}

// configComment tells the user which file the snippet belongs in.
func configComment(p *clients.Profile) string {
	path := p.ConfigPath(runtime.GOOS)
	if path == "" {
		return p.DisplayName + ": " + p.CLI.Reason
	}
	return "Add to " + path
}
