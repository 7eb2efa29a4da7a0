package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gleanwork/mcp-config-glean/internal/cli"
	"github.com/gleanwork/mcp-config-glean/internal/cli/prompt"
	"github.com/gleanwork/mcp-config-glean/internal/config"
	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/internal/logging"
	"github.com/gleanwork/mcp-config-glean/pkg/clients"
	"github.com/gleanwork/mcp-config-glean/pkg/mcp"
)

// showSecrets holds the value of the --show-secrets flag.
var showSecrets bool

// flagKeys maps connection flag names to config keys.
var flagKeys = map[string]string{
	"client":    config.KeyClient,
	"transport": config.KeyTransport,
	"instance":  config.KeyInstance,
	"token":     config.KeyAPIToken,
	"format":    config.KeyFormat,
}

// addConnectionFlags registers the flags shared by config and command.
// Values are read back through viper, so the flags carry no variables.
func addConnectionFlags(c *cobra.Command) {
	f := c.Flags()
	f.StringP("client", "c", "", "client id, see 'mcp-config-glean clients' (prompted for when omitted)")
	f.StringP("transport", "t", "", "transport: stdio (local server) or http (remote server)")
	f.StringP("instance", "i", "", "Glean instance name, as in <instance>-be.glean.com [$GLEAN_INSTANCE]")
	f.String("token", "", "Glean API token; omit to use OAuth [$GLEAN_API_TOKEN]")
	f.BoolVar(&showSecrets, "show-secrets", false, "print tokens instead of masking them")
}

func bindConnectionFlags(c *cobra.Command) error {
	for name, key := range flagKeys {
		flag := c.Flags().Lookup(name)
		if flag == nil {
			continue
		}
		if err := viper.BindPFlag(key, flag); err != nil {
			return errors.Wrapf(err, "binding --%s", name)
		}
	}
	return nil
}

// resolveBuilder returns the builder for the configured client, asking the
// user to pick one when none is configured and stdin is a terminal.
func resolveBuilder(c *cobra.Command) (*clients.Builder, error) {
	reg := clients.Default()
	id := loaded.Client

	if strings.TrimSpace(id) == "" && logging.IsInteractive(c.InOrStdin()) {
		p, err := prompt.NewSelector().SelectClient(configurableProfiles(reg))
		if err != nil {
			return nil, err
		}
		id = p.ID
	}

	b, err := cli.ResolveBuilder(reg, id)
	if err != nil {
		return nil, err
	}
	logging.FromContext(c.Context()).Debug("client resolved", "client", b.ClientID())
	return b, nil
}

func configurableProfiles(reg *clients.Registry) []*clients.Profile {
	var out []*clients.Profile
	for _, p := range reg.Profiles() {
		if p.IsConfigurable() {
			out = append(out, p)
		}
	}
	return out
}

// connectionParams builds validated params from the loaded configuration.
func connectionParams() (mcp.Params, error) {
	if strings.TrimSpace(loaded.Instance) == "" {
		return mcp.Params{}, errors.NewUserError(errors.ErrMissingInstance,
			"Pass --instance <name> or set GLEAN_INSTANCE")
	}
	p, err := loaded.Params()
	if err != nil {
		return mcp.Params{}, errors.NewUserError(err, "Use --transport stdio or --transport http")
	}
	if err := p.Validate(); err != nil {
		return mcp.Params{}, errors.NewUserError(err, "")
	}
	return p, nil
}

// buildError classifies builder failures: malformed params and
// unsupported transports are the user's to fix.
func buildError(err error) error {
	if errors.Is(err, mcp.ErrInvalidParams) || errors.Is(err, clients.ErrTransportNotSupported) {
		return errors.NewUserError(err, "")
	}
	return errors.NewSystemError(err, "")
}

// cancelled reports whether err is a dismissed picker, which is not a failure.
func cancelled(err error) bool {
	return errors.Is(err, prompt.ErrSelectionCancelled)
}
