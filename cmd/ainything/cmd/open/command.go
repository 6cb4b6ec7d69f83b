// Package open provides the open command, which resolves a shared link the
// way the browser does.
package open

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/ainything/cmd/application"
	"github.com/agentstation/ainything/internal/cmd/cmdutil"
	"github.com/agentstation/ainything/internal/cmd/output"
	"github.com/agentstation/ainything/pkg/errors"
	"github.com/agentstation/ainything/pkg/logging"
	"github.com/agentstation/ainything/pkg/view"
)

// NewCommand creates the open command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "open <fragment|url>",
		GroupID: cmdutil.GroupCore,
		Short:   "Resolve a shared link or URL fragment",
		Long: `Open navigates to a URL fragment as a fresh browser session would.

  #model=<name>    shows that model, or the full list with a notice when
                   the model does not exist
  #search=<text>   shows the search results for the text

A model key wins when both are present. Malformed fragments and unknown
keys leave the default list unchanged.`,
		Example: `  ainything open '#model=GPT-4o'
  ainything open 'https://ainything.ai/#search=image%20generation'
  ainything open search=chat -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, app, args[0])
		},
	}
}

func run(cmd *cobra.Command, app application.Application, target string) error {
	format, err := cmdutil.ResolveFormat(app)
	if err != nil {
		return err
	}

	logger := app.Logger()
	ctx := logging.WithLogger(cmd.Context(), logger)

	session := view.New(app.CatalogLoader(),
		view.WithSettings(app.DefaultSettings()),
		view.WithLogger(logger),
	)
	snap := session.Start(ctx, target)

	if snap.Error != nil {
		return errors.New(snap.Error.Message)
	}

	stderr := cmd.ErrOrStderr()
	if snap.Notice != "" {
		fmt.Fprintln(stderr, snap.Notice)
	}

	if snap.Mode == view.ModeDetail && snap.Detail != nil {
		return output.FormatModel(cmd.OutOrStdout(), *snap.Detail, format)
	}

	if !cmdutil.Quiet(cmd) {
		cmdutil.PrintSummary(stderr, snap.Summary)
	}
	return output.FormatModels(cmd.OutOrStdout(), snap.Results, format)
}
