// Package about provides the about command, which renders the About document
// for the terminal.
package about

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentstation/ainything/cmd/application"
	"github.com/agentstation/ainything/internal/cmd/cmdutil"
	"github.com/agentstation/ainything/internal/cmd/output"
	"github.com/agentstation/ainything/pkg/constants"
	"github.com/agentstation/ainything/pkg/content"
	"github.com/agentstation/ainything/pkg/errors"
	"github.com/agentstation/ainything/pkg/view"
)

// NewCommand creates the about command.
func NewCommand(app application.Application) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:     "about",
		GroupID: cmdutil.GroupInteractive,
		Short:   "Show the About page",
		Long: `About renders the About document for the terminal. With -o json or
-o yaml the document is written as data, including its rendered HTML, and
with -o markdown as its markdown source.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderer := app.Content()
			if renderer == nil {
				return errors.New("Failed to load About content.")
			}

			about := view.LoadAbout(cmd.Context(), renderer, constants.DefaultAboutDocument)
			if about.Err != "" {
				return errors.New(about.Err)
			}

			format, err := cmdutil.ResolveFormat(app)
			if err != nil {
				return err
			}
			switch format {
			case output.FormatJSON, output.FormatYAML:
				return output.FormatAny(cmd.OutOrStdout(), about.Document, format)
			case output.FormatMarkdown:
				_, err = fmt.Fprint(cmd.OutOrStdout(), about.Document.Markdown)
				return err
			}

			text, err := content.RenderTerminal(about.Document.Markdown, content.TerminalOptions{
				Style: app.GlamourStyle(),
				Width: width,
			})
			if err != nil {
				return errors.WrapRender(constants.DefaultAboutDocument, err)
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), text)
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 80, "Word wrap width")

	return cmd
}
