package output

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/agentstation/ainything/internal/cmd/emoji"
	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/query"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents data formatted for table output.
type Data struct {
	Title           string
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align
}

const maxDescription = 60

// ModelsToTableData converts models to table rows. Wide adds the
// description and pricing details.
func ModelsToTableData(models []catalogs.Model, wide bool) Data {
	headers := []string{"Name", "Provider", "Capabilities", "Cost", "Free", "Trial"}
	align := []Align{AlignLeft, AlignLeft, AlignLeft, AlignRight, AlignCenter, AlignCenter}
	if wide {
		headers = append(headers, "Pricing", "Description")
		align = append(align, AlignLeft, AlignLeft)
	}

	rows := make([][]string, 0, len(models))
	for _, m := range models {
		row := []string{
			m.Name,
			orDash(m.Provider),
			orDash(JoinTags(m.Capabilities)),
			FormatCost(m.Pricing.Cost),
			FormatBool(m.Pricing.Free),
			FormatBool(m.Pricing.FreeTrial),
		}
		if wide {
			row = append(row, orDash(m.Pricing.Details), orDash(Truncate(m.Description, maxDescription)))
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// ModelDetailData renders a single model as a property table.
func ModelDetailData(m catalogs.Model) Data {
	rows := [][]string{
		{"Provider", orDash(m.Provider)},
		{"Description", orDash(m.Description)},
		{"Capabilities", orDash(JoinTags(m.Capabilities))},
		{"Input Types", orDash(JoinTags(m.InputTypes))},
		{"Output Types", orDash(JoinTags(m.OutputTypes))},
		{"Use Cases", orDash(strings.Join(m.UseCases, "; "))},
		{"Cost", FormatCost(m.Pricing.Cost)},
		{"Free", FormatBool(m.Pricing.Free)},
		{"Free Trial", FormatBool(m.Pricing.FreeTrial)},
		{"Tier", orDash(TitleCase(m.Pricing.Tier))},
		{"Pricing", orDash(m.Pricing.Details)},
		{"URL", orDash(m.URL)},
	}
	return Data{
		Title:           m.Name,
		Headers:         []string{"Property", "Value"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignLeft, AlignLeft},
	}
}

// FacetsToTableData lists every facet value with its facet label.
func FacetsToTableData(f query.Facets) Data {
	var rows [][]string
	add := func(label string, values []string) {
		for _, v := range values {
			rows = append(rows, []string{label, v})
		}
	}
	add(FacetLabel("capabilities"), f.Capabilities)
	add(FacetLabel("input_types"), f.InputTypes)
	add(FacetLabel("output_types"), f.OutputTypes)

	return Data{Headers: []string{"Facet", "Value"}, Rows: rows}
}

// FacetLabel turns a field name such as "input_types" into "Input Types".
func FacetLabel(field string) string {
	return TitleCase(strings.ReplaceAll(field, "_", " "))
}

// TitleCase title-cases s using English rules.
func TitleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// FormatCost renders a monthly cost, "Free" for zero.
func FormatCost(cost float64) string {
	if cost == 0 {
		return "Free"
	}
	return "$" + strconv.FormatFloat(cost, 'f', -1, 64) + "/mo"
}

// FormatBudget renders a budget cap; an uncapped budget is "Any".
func FormatBudget(s query.Settings) string {
	limit, ok := s.BudgetLimit()
	if !ok {
		return "Any"
	}
	return fmt.Sprintf("$%g", limit)
}

// FormatBool renders a boolean as a check mark.
func FormatBool(b bool) string {
	if b {
		return emoji.Success
	}
	return ""
}

// JoinTags joins tag values with commas.
func JoinTags(tags []string) string {
	return strings.Join(tags, ", ")
}

// Truncate shortens s to max runes, ending with "...".
func Truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
