package cmdutil

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/agentstation/ainything/cmd/application"
	"github.com/agentstation/ainything/internal/cmd/output"
	"github.com/agentstation/ainything/pkg/view"
)

// ResolveFormat returns the configured output format, detecting one from
// the terminal when none is set.
func ResolveFormat(app application.Application) (output.Format, error) {
	format, err := output.ParseFormat(app.OutputFormat())
	if err != nil {
		return "", err
	}
	if format == "" {
		format = output.DetectFormat("")
	}
	return format, nil
}

// Quiet reports whether --quiet was given. Commands built without the root
// persistent flags are never quiet.
func Quiet(cmd *cobra.Command) bool {
	if f := cmd.Flags().Lookup("quiet"); f != nil {
		return f.Value.String() == "true"
	}
	return false
}

// PrintSummary writes the result heading and count line.
func PrintSummary(w io.Writer, s view.Summary) {
	fmt.Fprintln(w, s.Heading)
	fmt.Fprintln(w, s.Count)
}

// CompleteModelNames returns the catalog model names for shell completion.
func CompleteModelNames(ctx context.Context, app application.Application) ([]string, cobra.ShellCompDirective) {
	if ctx == nil {
		ctx = context.Background()
	}
	cat, err := app.Catalog(ctx)
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	names := make([]string, 0, cat.Len())
	for _, m := range cat.Models() {
		names = append(names, m.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}
