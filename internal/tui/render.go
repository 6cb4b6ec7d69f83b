package tui

import (
	"fmt"
	"strings"

	"github.com/agentstation/ainything/internal/cmd/output"
	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/content"
)

// detailMarkdown describes a model as markdown for the detail view.
func detailMarkdown(m catalogs.Model, link string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", m.Name)
	if m.Provider != "" {
		fmt.Fprintf(&b, "*by %s*\n\n", m.Provider)
	}
	if m.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", m.Description)
	}

	b.WriteString("## Pricing\n\n")
	fmt.Fprintf(&b, "- Cost: %s\n", output.FormatCost(m.Pricing.Cost))
	if m.Pricing.Tier != "" {
		fmt.Fprintf(&b, "- Tier: %s\n", output.TitleCase(m.Pricing.Tier))
	}
	if m.Pricing.Free {
		b.WriteString("- Free to use\n")
	}
	if m.Pricing.FreeTrial {
		b.WriteString("- Free trial available\n")
	}
	if m.Pricing.Details != "" {
		fmt.Fprintf(&b, "- %s\n", m.Pricing.Details)
	}
	b.WriteString("\n")

	writeList(&b, output.FacetLabel("capabilities"), m.Capabilities)
	writeList(&b, output.FacetLabel("input_types"), m.InputTypes)
	writeList(&b, output.FacetLabel("output_types"), m.OutputTypes)
	writeList(&b, output.FacetLabel("use_cases"), m.UseCases)

	if m.URL != "" {
		fmt.Fprintf(&b, "Homepage: <%s>\n\n", m.URL)
	}
	if link != "" {
		fmt.Fprintf(&b, "Share: <%s>\n", link)
	}
	return b.String()
}

func writeList(b *strings.Builder, title string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "## %s\n\n", title)
	for _, v := range values {
		fmt.Fprintf(b, "- %s\n", v)
	}
	b.WriteString("\n")
}

// renderMarkdown renders markdown for the terminal, falling back to the
// source text when rendering fails.
func renderMarkdown(md, style string, width int) string {
	out, err := content.RenderTerminal(md, content.TerminalOptions{Style: style, Width: width})
	if err != nil {
		return md
	}
	return out
}
