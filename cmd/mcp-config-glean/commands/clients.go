package commands

import (
	"fmt"
	"runtime"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/gleanwork/mcp-config-glean/internal/cli"
	"github.com/gleanwork/mcp-config-glean/internal/errors"
	"github.com/gleanwork/mcp-config-glean/internal/paths"
	"github.com/gleanwork/mcp-config-glean/pkg/clients"
)

var (
	// clientsOS holds the value of the --os flag.
	clientsOS string

	// expandPaths holds the value of the --expand flag.
	expandPaths bool
)

func init() {
	clientsCmd.Flags().StringVar(&clientsOS, "os", runtime.GOOS, "operating system whose config paths are shown: darwin, linux, windows")
	clientsCmd.Flags().BoolVar(&expandPaths, "expand", false, "show config paths with ~ and %APPDATA% resolved (current OS only)")
	rootCmd.AddCommand(clientsCmd)
}

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "List supported clients",
	Long: `List every client mcp-config-glean knows about, how its server is
installed and where its configuration file lives.

Clients marked web_ui_only or admin_managed cannot be configured locally.`,
	Args: cobra.NoArgs,
	RunE: runClients,
}

func runClients(c *cobra.Command, _ []string) error {
	if expandPaths && clientsOS != runtime.GOOS {
		return errors.NewUserError(
			errors.Newf("cannot expand %s paths on %s", clientsOS, runtime.GOOS),
			"Drop --expand or --os",
		)
	}

	infos := cli.Clients(clients.Default(), clientsOS)
	w := c.OutOrStdout()

	table := tablewriter.NewWriter(w)
	table.Options(
		tablewriter.WithHeader([]string{"ID", "Client", "Status", "Install", "Format", "Config path"}),
		tablewriter.WithAlignment(tw.MakeAlign(6, tw.AlignLeft)),
	)

	var notes []cli.ClientInfo
	for _, info := range infos {
		if expandPaths && info.Path != "" {
			expanded, err := paths.Expand(info.Path)
			if err != nil {
				return errors.NewSystemError(err, "")
			}
			info.Path = expanded
		}
		if err := table.Append([]string{
			info.ID,
			info.DisplayName,
			info.Status,
			orDash(info.Install),
			orDash(info.Format),
			orDash(info.Path),
		}); err != nil {
			return errors.Wrap(err, "appending table row")
		}
		if info.Note != "" {
			notes = append(notes, info)
		}
	}
	if err := table.Render(); err != nil {
		return errors.Wrap(err, "rendering clients table")
	}

	if len(notes) > 0 {
		fmt.Fprintln(w)
		for _, info := range notes {
			fmt.Fprintf(w, "%s: %s\n", info.ID, info.Note)
		}
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
