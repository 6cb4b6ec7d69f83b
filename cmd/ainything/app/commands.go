package app

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/agentstation/ainything/cmd/ainything/cmd/about"
	"github.com/agentstation/ainything/cmd/ainything/cmd/browse"
	"github.com/agentstation/ainything/cmd/ainything/cmd/facets"
	"github.com/agentstation/ainything/cmd/ainything/cmd/link"
	"github.com/agentstation/ainything/cmd/ainything/cmd/list"
	"github.com/agentstation/ainything/cmd/ainything/cmd/open"
	"github.com/agentstation/ainything/cmd/ainything/cmd/serve"
	"github.com/agentstation/ainything/cmd/ainything/cmd/show"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	// Catalog commands
	rootCmd.AddCommand(list.NewCommand(a))
	rootCmd.AddCommand(show.NewCommand(a))
	rootCmd.AddCommand(facets.NewCommand(a))
	rootCmd.AddCommand(open.NewCommand(a))
	rootCmd.AddCommand(link.NewCommand(a))

	// Interactive commands
	rootCmd.AddCommand(browse.NewCommand(a))
	rootCmd.AddCommand(about.NewCommand(a))
	rootCmd.AddCommand(serve.NewCommand(a))

	// Utility commands
	rootCmd.AddCommand(a.NewVersionCommand())
}

// NewVersionCommand creates the version command.
func (a *App) NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ainything %s\n", a.version)
			if a.config.Verbose {
				fmt.Fprintf(out, "  commit:   %s\n", a.commit)
				fmt.Fprintf(out, "  built:    %s\n", a.date)
				fmt.Fprintf(out, "  built by: %s\n", a.builtBy)
				fmt.Fprintf(out, "  go:       %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
			}
		},
	}
}
