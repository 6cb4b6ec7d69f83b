// Package query evaluates a free-text search and a set of filter settings
// against the model catalog. Evaluation is a pure function of its inputs.
package query

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// BudgetCeiling is the upper bound of the budget range control.
// A budget at or above it means "no budget cap".
const BudgetCeiling = 50.0

// SortKey selects the ordering of a result set.
type SortKey string

// Sort keys.
const (
	SortCatalog   SortKey = ""          // catalog order
	SortName      SortKey = "name"      // name ascending, case-insensitive
	SortCostAsc   SortKey = "cost-asc"  // cheapest first
	SortCostDesc  SortKey = "cost-desc" // most expensive first
	SortRelevance SortKey = "relevance" // best text match first
)

// SortKeys lists the accepted sort keys in display order.
func SortKeys() []SortKey {
	return []SortKey{SortCatalog, SortName, SortCostAsc, SortCostDesc, SortRelevance}
}

// String returns the key, or "catalog" for the default ordering.
func (k SortKey) String() string {
	if k == SortCatalog {
		return "catalog"
	}
	return string(k)
}

// ParseSortKey maps user input to a sort key. Unknown values fall back to
// catalog order.
func ParseSortKey(s string) SortKey {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(s))); key {
	case SortName, SortCostAsc, SortCostDesc, SortRelevance:
		return key
	default:
		return SortCatalog
	}
}

// Settings are the filter and sort controls applied on top of the text search.
type Settings struct {
	FreeOnly     bool     `json:"free_only" yaml:"free_only"`
	FreeTrials   bool     `json:"free_trials" yaml:"free_trials"`
	Capabilities []string `json:"capabilities,omitempty" yaml:"capabilities,omitempty"`
	InputTypes   []string `json:"input_types,omitempty" yaml:"input_types,omitempty"`
	OutputTypes  []string `json:"output_types,omitempty" yaml:"output_types,omitempty"`
	MaxBudget    *float64 `json:"max_budget" yaml:"max_budget,omitempty"` // nil means no cap
	SortBy       SortKey  `json:"sort_by" yaml:"sort_by"`
}

// DefaultSettings returns settings that filter nothing and keep catalog order.
// It equals the zero value.
func DefaultSettings() Settings {
	return Settings{SortBy: SortCatalog}
}

// Budget returns a cap of v, or nil when v is out of the control's range
// (NaN, negative, or at or above BudgetCeiling).
func Budget(v float64) *float64 {
	if math.IsNaN(v) || v < 0 || v >= BudgetCeiling {
		return nil
	}
	return &v
}

// ParseBudget parses a budget control value. Empty, non-numeric, negative
// and at-ceiling values all mean no cap.
func ParseBudget(s string) *float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return nil
	}
	return Budget(v)
}

func normalizeBudget(b *float64) *float64 {
	if b == nil {
		return nil
	}
	return Budget(*b)
}

// Normalize returns a copy with the budget folded into range, the sort key
// validated and blank facet values dropped.
func (s Settings) Normalize() Settings {
	s.MaxBudget = normalizeBudget(s.MaxBudget)
	s.SortBy = ParseSortKey(string(s.SortBy))
	s.Capabilities = cleanValues(s.Capabilities)
	s.InputTypes = cleanValues(s.InputTypes)
	s.OutputTypes = cleanValues(s.OutputTypes)
	return s
}

// BudgetCapped reports whether the budget filter is active.
func (s Settings) BudgetCapped() bool {
	return normalizeBudget(s.MaxBudget) != nil
}

// BudgetLimit returns the effective cap and whether one is set.
func (s Settings) BudgetLimit() (float64, bool) {
	if b := normalizeBudget(s.MaxBudget); b != nil {
		return *b, true
	}
	return 0, false
}

// HasActiveFilters reports whether any filter narrows the result set.
// The sort key is not a filter.
func (s Settings) HasActiveFilters() bool {
	return s.FreeOnly ||
		s.FreeTrials ||
		len(cleanValues(s.Capabilities)) > 0 ||
		len(cleanValues(s.InputTypes)) > 0 ||
		len(cleanValues(s.OutputTypes)) > 0 ||
		s.BudgetCapped()
}

// Equal reports whether two settings select the same results in the same order.
func (s Settings) Equal(o Settings) bool {
	a, b := s.Normalize(), o.Normalize()
	return a.FreeOnly == b.FreeOnly &&
		a.FreeTrials == b.FreeTrials &&
		slices.Equal(a.Capabilities, b.Capabilities) &&
		slices.Equal(a.InputTypes, b.InputTypes) &&
		slices.Equal(a.OutputTypes, b.OutputTypes) &&
		budgetEqual(a, b) &&
		a.SortBy == b.SortBy
}

func budgetEqual(a, b Settings) bool {
	av, aok := a.BudgetLimit()
	bv, bok := b.BudgetLimit()
	return aok == bok && av == bv
}

// SplitValues splits comma separated values from repeated parameters,
// trimming blanks. It is shared by the CLI flags and HTTP query parameters.
func SplitValues(raw ...string) []string {
	var out []string
	for _, r := range raw {
		for _, v := range strings.Split(r, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func cleanValues(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
