// Package list provides the list command, which searches, filters and sorts
// the catalog.
package list

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentstation/ainything/cmd/application"
	"github.com/agentstation/ainything/internal/cmd/cmdutil"
	"github.com/agentstation/ainything/internal/cmd/output"
	"github.com/agentstation/ainything/pkg/query"
	"github.com/agentstation/ainything/pkg/view"
)

// NewCommand creates the list command.
func NewCommand(app application.Application) *cobra.Command {
	var flags *cmdutil.FilterFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "search"},
		GroupID: cmdutil.GroupCore,
		Short:   "Search and filter the model catalog",
		Long: `List evaluates the catalog against a text search and filter settings.

The search matches name, provider, description, tags and use cases,
ignoring case. Values given for one facet are alternatives (any of them
matches); different facets and the pricing filters must all match.

The result heading and count are written to stderr so that stdout can be
piped.`,
		Example: `  ainything list                                   # All models in catalog order
  ainything list --search claude                   # Text search
  ainything list --free-only --sort name           # Free models by name
  ainything list --capability chat,vision          # Chat OR vision
  ainything list --capability chat --input-type image
  ainything list --max-budget 20 --sort cost-asc -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app, flags)
		},
	}

	flags = cmdutil.AddFilterFlags(cmd)

	return cmd
}

func run(cmd *cobra.Command, app application.Application, flags *cmdutil.FilterFlags) error {
	format, err := cmdutil.ResolveFormat(app)
	if err != nil {
		return err
	}

	cat, err := app.Catalog(cmd.Context())
	if err != nil {
		return err
	}

	q := strings.TrimSpace(flags.Search)
	settings := flags.Settings(app.DefaultSettings())
	results := query.Evaluate(cat.Models(), q, settings)

	app.Logger().Debug().
		Str("query", q).
		Bool("filtered", settings.HasActiveFilters()).
		Str("sort", settings.SortBy.String()).
		Int("results", len(results)).
		Msg("Catalog evaluated")

	if !cmdutil.Quiet(cmd) {
		cmdutil.PrintSummary(cmd.ErrOrStderr(), view.Summarize(len(results), q, settings))
	}

	return output.FormatModels(cmd.OutOrStdout(), results, format)
}
