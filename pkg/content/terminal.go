package content

import (
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/agentstation/ainything/pkg/constants"
)

// TerminalOptions control terminal rendering.
type TerminalOptions struct {
	Style string // glamour style name or path, e.g. "dark", "light", "notty"
	Width int    // word wrap width, 0 for the default of 80
}

// RenderTerminal renders markdown as styled terminal text.
func RenderTerminal(markdown string, opts TerminalOptions) (string, error) {
	if opts.Style == "" {
		opts.Style = constants.DefaultGlamourStyle
	}
	if opts.Width <= 0 {
		opts.Width = 80
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath(opts.Style),
		glamour.WithWordWrap(opts.Width),
	)
	if err != nil {
		return "", err
	}

	out, err := r.Render(markdown)
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n") + "\n", nil
}
