// Package browse provides the browse command, the interactive terminal
// catalog browser.
package browse

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/ainything/cmd/application"
	"github.com/agentstation/ainything/internal/cmd/cmdutil"
	"github.com/agentstation/ainything/internal/tui"
	"github.com/agentstation/ainything/pkg/logging"
	"github.com/agentstation/ainything/pkg/view"
)

// NewCommand creates the browse command.
func NewCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "browse [fragment|url]",
		Aliases: []string{"ui", "tui"},
		GroupID: cmdutil.GroupInteractive,
		Short:   "Browse the catalog interactively",
		Long: `Browse opens a full-screen catalog browser.

Type / to search, f to edit filters, s to change the sort order and enter to
open a model. A shared link or fragment given as an argument is opened on
start, just as in a web browser.

Logs are written to ~/.ainything/logs/ainything.log while the browser runs.`,
		Example: `  ainything browse
  ainything browse '#search=image'
  ainything browse 'https://ainything.ai/#model=Claude'`,
		Args: cobra.MaximumNArgs(1),
		Annotations: map[string]string{
			cmdutil.AnnotationLogOutput: cmdutil.LogOutputFile,
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var initial string
			if len(args) == 1 {
				initial = args[0]
			}

			logger := app.Logger()
			ctx := logging.WithLogger(cmd.Context(), logger)

			opts := []view.Option{
				view.WithSettings(app.DefaultSettings()),
				view.WithLogger(logger),
			}
			if renderer := app.Content(); renderer != nil {
				opts = append(opts, view.WithContent(renderer, ""))
			}
			session := view.New(app.CatalogLoader(), opts...)

			logger.Info().Str("fragment", initial).Msg("Starting browser")
			return tui.Run(ctx, session, tui.Options{
				Initial:      initial,
				BaseURL:      app.BaseURL(),
				GlamourStyle: app.GlamourStyle(),
			})
		},
	}
}
