package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agentstation/ainything/internal/cmd/output"
	"github.com/agentstation/ainything/pkg/query"
)

// budgetStep is the budget change per key press.
const budgetStep = 5.0

type rowKind int

const (
	rowFreeOnly rowKind = iota
	rowFreeTrials
	rowBudget
	rowCapability
	rowInputType
	rowOutputType
)

type filterRow struct {
	kind  rowKind
	value string
}

// filterPanel edits a draft of the filter settings. Nothing is applied until
// the draft is submitted.
type filterPanel struct {
	rows   []filterRow
	cursor int
	draft  query.Settings
}

func newFilterPanel(f query.Facets, s query.Settings) filterPanel {
	rows := []filterRow{{kind: rowFreeOnly}, {kind: rowFreeTrials}, {kind: rowBudget}}
	for _, v := range f.Capabilities {
		rows = append(rows, filterRow{kind: rowCapability, value: v})
	}
	for _, v := range f.InputTypes {
		rows = append(rows, filterRow{kind: rowInputType, value: v})
	}
	for _, v := range f.OutputTypes {
		rows = append(rows, filterRow{kind: rowOutputType, value: v})
	}

	draft := s
	draft.Capabilities = slices.Clone(s.Capabilities)
	draft.InputTypes = slices.Clone(s.InputTypes)
	draft.OutputTypes = slices.Clone(s.OutputTypes)

	return filterPanel{rows: rows, draft: draft}
}

func (p *filterPanel) move(delta int) {
	p.cursor = max(0, min(len(p.rows)-1, p.cursor+delta))
}

func (p *filterPanel) current() filterRow {
	return p.rows[p.cursor]
}

// toggle flips the row under the cursor. On the budget row it resets the
// cap.
func (p *filterPanel) toggle() {
	row := p.current()
	switch row.kind {
	case rowFreeOnly:
		p.draft.FreeOnly = !p.draft.FreeOnly
	case rowFreeTrials:
		p.draft.FreeTrials = !p.draft.FreeTrials
	case rowBudget:
		p.draft.MaxBudget = nil
	case rowCapability:
		p.draft.Capabilities = toggleValue(p.draft.Capabilities, row.value)
	case rowInputType:
		p.draft.InputTypes = toggleValue(p.draft.InputTypes, row.value)
	case rowOutputType:
		p.draft.OutputTypes = toggleValue(p.draft.OutputTypes, row.value)
	}
}

// adjustBudget moves the budget cap by delta within [0, BudgetCeiling].
// Reaching the ceiling removes the cap.
func (p *filterPanel) adjustBudget(delta float64) {
	if p.current().kind != rowBudget {
		return
	}
	v, ok := p.draft.BudgetLimit()
	if !ok {
		v = query.BudgetCeiling
	}
	p.draft.MaxBudget = query.Budget(max(0, min(query.BudgetCeiling, v+delta)))
}

func (p filterPanel) settings() query.Settings {
	return p.draft.Normalize()
}

func (p filterPanel) checked(row filterRow) bool {
	switch row.kind {
	case rowFreeOnly:
		return p.draft.FreeOnly
	case rowFreeTrials:
		return p.draft.FreeTrials
	case rowBudget:
		return p.draft.BudgetCapped()
	case rowCapability:
		return containsFold(p.draft.Capabilities, row.value)
	case rowInputType:
		return containsFold(p.draft.InputTypes, row.value)
	case rowOutputType:
		return containsFold(p.draft.OutputTypes, row.value)
	}
	return false
}

func (p filterPanel) View() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Filters") + "\n")

	section := rowKind(-1)
	for i, row := range p.rows {
		if row.kind >= rowCapability && row.kind != section {
			section = row.kind
			b.WriteString("\n" + sectionStyle.Render(sectionTitle(row.kind)) + "\n")
		}

		line := p.label(row)
		if i == p.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n" + dimStyle.Render("space toggle • ←/→ budget • enter apply • esc cancel"))
	return panelStyle.Render(b.String())
}

func (p filterPanel) label(row filterRow) string {
	box := "[ ]"
	if p.checked(row) {
		box = "[x]"
	}
	switch row.kind {
	case rowFreeOnly:
		return box + " Free only"
	case rowFreeTrials:
		return box + " Free trials"
	case rowBudget:
		return fmt.Sprintf("    Max budget: %s", output.FormatBudget(p.draft))
	default:
		return box + " " + row.value
	}
}

func sectionTitle(k rowKind) string {
	switch k {
	case rowCapability:
		return output.FacetLabel("capabilities")
	case rowInputType:
		return output.FacetLabel("input_types")
	default:
		return output.FacetLabel("output_types")
	}
}

func toggleValue(values []string, v string) []string {
	if i := slices.IndexFunc(values, func(s string) bool { return strings.EqualFold(s, v) }); i >= 0 {
		return slices.Delete(values, i, i+1)
	}
	return append(values, v)
}

func containsFold(values []string, v string) bool {
	return slices.ContainsFunc(values, func(s string) bool { return strings.EqualFold(s, v) })
}
