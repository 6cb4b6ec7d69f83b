// Package facets provides the facets command, which lists the values the
// capability and input/output type filters accept.
package facets

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/ainything/cmd/application"
	"github.com/agentstation/ainything/internal/cmd/cmdutil"
	"github.com/agentstation/ainything/internal/cmd/output"
	"github.com/agentstation/ainything/pkg/query"
)

// NewCommand creates the facets command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "facets",
		GroupID: cmdutil.GroupCore,
		Short:   "List capability and input/output type values",
		Long: `Facets lists every distinct capability, input type and output type in
the catalog, sorted alphabetically. These are the values accepted by the
--capability, --input-type and --output-type filters.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := cmdutil.ResolveFormat(app)
			if err != nil {
				return err
			}

			cat, err := app.Catalog(cmd.Context())
			if err != nil {
				return err
			}

			return output.FormatFacets(cmd.OutOrStdout(), query.ExtractFacets(cat.Models()), format)
		},
	}
}
