package commands

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gleanwork/mcp-config-glean/cmd"
	"github.com/gleanwork/mcp-config-glean/pkg/clients"
)

func init() {
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version information",
	Long:  `Print the version, commit, build date and Go version of mcp-config-glean.`,
	Run: func(c *cobra.Command, _ []string) {
		w := c.OutOrStdout()
		fmt.Fprintf(w, "mcp-config-glean version %s\n", cmd.Version)
		fmt.Fprintf(w, "  commit:    %s\n", cmd.Commit)
		fmt.Fprintf(w, "  built:     %s\n", cmd.Date)
		fmt.Fprintf(w, "  go:        %s\n", runtime.Version())
		fmt.Fprintf(w, "  clients:   %d (%d configurable)\n",
			len(clients.Default().IDs()), len(clients.Default().Configurable()))
	},
}
