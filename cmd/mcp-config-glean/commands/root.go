// Package commands implements the CLI commands for mcp-config-glean.
package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gleanwork/mcp-config-glean/cmd"
	"github.com/gleanwork/mcp-config-glean/internal/config"
	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/internal/logging"
	"github.com/gleanwork/mcp-config-glean/internal/paths"
)

// debugEnv raises verbosity when no -v flag is given: 1 or true for
// debug, 2 for trace.
const debugEnv = "GLEAN_DEBUG"

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// configFile holds the value of the --config flag.
var configFile string

// loaded is the configuration resolved for the running command: flags,
// then GLEAN_ environment variables, then the config file, then defaults.
var loaded *config.Config

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv, -vvv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"only log errors")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"also write logs to this file in JSON format")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml, then "+paths.ConfigFile()+")")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("mcp-config-glean version {{.Version}}\n")

	// Silence errors and usage so Execute controls error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

var rootCmd = &cobra.Command{
	Use:   "mcp-config-glean",
	Short: "Generate Glean MCP server configuration for AI clients",
	Long: `mcp-config-glean prints the configuration snippet or install command that
connects an MCP-capable client (Claude Code, Cursor, VS Code, Goose, Codex
and others) to Glean.

Two transports are supported. stdio launches @gleanwork/local-mcp-server
locally with GLEAN_INSTANCE and, optionally, GLEAN_API_TOKEN. http points
the client at https://<instance>-be.glean.com/mcp/default; clients without
native HTTP support are bridged through mcp-remote.

Nothing is written to disk. Secrets are masked in output unless
--show-secrets is given.`,
	Example: `  # Print the Cursor configuration for the local server
  mcp-config-glean config --client cursor --instance my-company

  # Print the Claude Code install command for the remote server
  mcp-config-glean command --client claude-code --transport http --instance my-company

  # List supported clients
  mcp-config-glean clients`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return loadConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("cannot use --quiet and --verbose together"), "")
	}

	level := slog.LevelError
	if !quiet {
		v := verbosity
		if v == 0 {
			switch os.Getenv(debugEnv) {
			case "1", "true":
				v = 2
			case "2":
				v = 3
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	handlers := []slog.Handler{logging.NewFormatHandler(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	})}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "opening log file"), "Check the --log-file path")
		}
		cobra.OnFinalize(func() { _ = f.Close() })
		handlers = append(handlers, logging.NewFormatHandler(logging.Config{
			Level:  level,
			Format: logging.FormatJSON,
			Output: f,
		}))
	}

	var handler slog.Handler = handlers[0]
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))
	return nil
}

// loadConfig resolves the configuration for cmd, binding any connection
// flags the command defines so they take precedence over the file.
func loadConfig(cmd *cobra.Command) error {
	if cmd.Name() == "help" || cmd.Name() == "version" {
		return nil
	}

	config.Init()
	if err := bindConnectionFlags(cmd); err != nil {
		return errors.NewSystemError(err, "")
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return errors.NewConfigError(err)
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		logger := logging.FromContext(cmd.Context())
		for _, e := range errs[1:] {
			logger.Error("invalid configuration", "error", e)
		}
		return errors.NewConfigError(errs[0])
	}

	logging.FromContext(cmd.Context()).Debug("configuration loaded",
		"instance", cfg.Instance,
		"client", cfg.Client,
		"transport", cfg.Transport,
		"format", cfg.Format,
		"api_token_set", cfg.APIToken != "",
	)
	loaded = cfg
	return nil
}

// Execute runs the root command and reports any error on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) && exitErr.Suggestion != "" {
		fmt.Fprintf(w, "%s\n", exitErr.Suggestion)
	}
	for _, hint := range errors.GetAllHints(err) {
		fmt.Fprintf(w, "Hint: %s\n", hint)
	}
}
