// Package link provides the link command, which builds shareable links.
package link

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/ainything/cmd/application"
	"github.com/agentstation/ainything/internal/cmd/cmdutil"
	"github.com/agentstation/ainything/pkg/errors"
	"github.com/agentstation/ainything/pkg/fragment"
)

// NewCommand creates the link command.
func NewCommand(app application.Application) *cobra.Command {
	var (
		baseURL string
		search  string
	)

	cmd := &cobra.Command{
		Use:     "link [name]",
		GroupID: cmdutil.GroupCore,
		Short:   "Print a shareable link to a model or search",
		Long: `Link prints the URL that opens a model's details, or with --search the
URL that opens a search. The model must exist in the catalog.`,
		Example: `  ainything link GPT-4o
  ainything link "DALL·E 3" --base-url http://localhost:8080/
  ainything link --search "image generation"`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return cmdutil.CompleteModelNames(cmd.Context(), app)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var state fragment.State
			switch {
			case len(args) == 1 && search != "":
				return errors.NewValidationError("search", search, "give either a model name or --search, not both")
			case len(args) == 1:
				cat, err := app.Catalog(cmd.Context())
				if err != nil {
					return err
				}
				if !cat.Has(args[0]) {
					return errors.NewNotFoundError("model", args[0])
				}
				state.Model = args[0]
			case search != "":
				state.Search = search
			default:
				return errors.NewValidationError("name", "", "a model name or --search is required")
			}

			if baseURL == "" {
				baseURL = app.BaseURL()
			}
			link, err := state.Link(baseURL)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURL, "base-url", "", "Base URL for the link (default from base_url config)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "Link to a search instead of a model")

	return cmd
}
