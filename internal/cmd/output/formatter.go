// Package output provides formatters for command output.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	md "github.com/nao1215/markdown"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// Format types for output.
type Format string

const (
	// FormatTable represents table output format.
	FormatTable Format = "table"
	// FormatWide is a table with the description and pricing detail columns.
	FormatWide Format = "wide"
	// FormatJSON represents JSON output format.
	FormatJSON Format = "json"
	// FormatYAML represents YAML output format.
	FormatYAML Format = "yaml"
	// FormatMarkdown renders tables as GitHub flavored markdown.
	FormatMarkdown Format = "markdown"
)

// Formats lists the accepted format names.
func Formats() []Format {
	return []Format{FormatTable, FormatWide, FormatJSON, FormatYAML, FormatMarkdown}
}

// IsTabular reports whether the format renders Data rather than raw values.
func (f Format) IsTabular() bool {
	switch f {
	case FormatTable, FormatWide, FormatMarkdown, "":
		return true
	}
	return false
}

// Formatter interface for all output types.
type Formatter interface {
	Format(w io.Writer, data any) error
}

// FormatterFunc allows functions to implement Formatter.
type FormatterFunc func(io.Writer, any) error

// Format implements the Formatter interface.
func (f FormatterFunc) Format(w io.Writer, data any) error {
	return f(w, data)
}

// NewFormatter creates appropriate formatter based on format.
func NewFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return &JSONFormatter{Indent: "  "}
	case FormatYAML:
		return &YAMLFormatter{}
	case FormatMarkdown:
		return &MarkdownFormatter{}
	default:
		return &TableFormatter{}
	}
}

// JSONFormatter outputs JSON format.
type JSONFormatter struct {
	Indent string
}

// Format implements the Formatter interface for JSON output. Markup such
// as rendered HTML is written unescaped.
func (f *JSONFormatter) Format(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	if f.Indent != "" {
		encoder.SetIndent("", f.Indent)
	}
	return encoder.Encode(data)
}

// YAMLFormatter outputs YAML format.
type YAMLFormatter struct{}

// Format outputs data in YAML format. Values are routed through their JSON
// encoding so custom marshalers (an uncapped budget as null) apply.
func (f *YAMLFormatter) Format(w io.Writer, data any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	yamlData, err := yaml.JSONToYAML(raw)
	if err != nil {
		return err
	}
	_, err = w.Write(yamlData)
	return err
}

// TableFormatter outputs table format.
type TableFormatter struct{}

// Format outputs Data as a table and anything else as JSON.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	v, ok := data.(Data)
	if !ok {
		return (&JSONFormatter{Indent: "  "}).Format(w, data)
	}

	if v.Title != "" {
		if _, err := fmt.Fprintln(w, v.Title); err != nil {
			return err
		}
	}

	config := tablewriter.Config{}
	if len(v.ColumnAlignment) > 0 {
		twAlign := make([]tw.Align, len(v.ColumnAlignment))
		for i, align := range v.ColumnAlignment {
			switch align {
			case AlignLeft:
				twAlign[i] = tw.AlignLeft
			case AlignCenter:
				twAlign[i] = tw.AlignCenter
			case AlignRight:
				twAlign[i] = tw.AlignRight
			default:
				twAlign[i] = tw.Skip
			}
		}
		config.Header.Alignment = tw.CellAlignment{PerColumn: twAlign}
		config.Row.Alignment = tw.CellAlignment{PerColumn: twAlign}
	}

	table := tablewriter.NewTable(w, tablewriter.WithConfig(config))

	if len(v.Headers) > 0 {
		headers := make([]any, len(v.Headers))
		for i, h := range v.Headers {
			headers[i] = h
		}
		table.Header(headers...)
	}

	for _, row := range v.Rows {
		rowData := make([]any, len(row))
		for i, cell := range row {
			rowData[i] = cell
		}
		if err := table.Append(rowData...); err != nil {
			return err
		}
	}

	return table.Render()
}

// MarkdownFormatter outputs Data as a markdown table.
type MarkdownFormatter struct{}

// Format writes a level 2 heading for the title followed by the table.
// Non-table data is written as a fenced JSON block.
func (f *MarkdownFormatter) Format(w io.Writer, data any) error {
	doc := md.NewMarkdown(w)

	v, ok := data.(Data)
	if !ok {
		raw, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		return doc.CodeBlocks(md.SyntaxHighlight("json"), string(raw)).Build()
	}

	if v.Title != "" {
		doc.H2(v.Title).LF()
	}
	if len(v.Headers) > 0 {
		rows := make([][]string, len(v.Rows))
		for i, row := range v.Rows {
			rows[i] = make([]string, len(row))
			for j, cell := range row {
				rows[i][j] = strings.ReplaceAll(cell, "|", `\|`)
			}
		}
		doc.Table(md.TableSet{Header: v.Headers, Rows: rows})
	}
	return doc.Build()
}

// DetectFormat auto-detects format based on terminal and environment.
func DetectFormat(explicitFormat string) Format {
	if explicitFormat != "" {
		return Format(strings.ToLower(explicitFormat))
	}

	if isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return FormatTable
	}

	// Default to JSON for pipes/redirects
	return FormatJSON
}

// ParseFormat converts string to Format with validation.
func ParseFormat(s string) (Format, error) {
	format := Format(strings.ToLower(strings.TrimSpace(s)))
	switch format {
	case FormatTable, FormatWide, FormatJSON, FormatYAML, FormatMarkdown, "":
		return format, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be one of: table, wide, json, yaml, markdown", s)
	}
}
