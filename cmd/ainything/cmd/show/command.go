// Package show provides the show command, which prints one model's details.
package show

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/ainything/cmd/application"
	"github.com/agentstation/ainything/internal/cmd/cmdutil"
	"github.com/agentstation/ainything/internal/cmd/output"
)

// NewCommand creates the show command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "show <name>",
		Aliases: []string{"get", "model"},
		GroupID: cmdutil.GroupCore,
		Short:   "Show details for a model",
		Long: `Show prints the full record for the model with the exact given name,
including pricing tier and details, use cases and homepage.`,
		Example: `  ainything show GPT-4o
  ainything show "Stable Diffusion XL" -o yaml`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
			return cmdutil.CompleteModelNames(cmd.Context(), app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := cmdutil.ResolveFormat(app)
			if err != nil {
				return err
			}

			cat, err := app.Catalog(cmd.Context())
			if err != nil {
				return err
			}

			model, err := cat.Find(args[0])
			if err != nil {
				return err
			}

			return output.FormatModel(cmd.OutOrStdout(), model, format)
		},
	}
}
