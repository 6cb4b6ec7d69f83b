package query

import (
	"sort"
	"strings"

	"github.com/agentstation/ainything/pkg/catalogs"
)

// Evaluator computes a result set. Evaluate is the default implementation;
// callers may substitute their own.
type Evaluator func(models []catalogs.Model, q string, s Settings) []catalogs.Model

// Evaluate applies the text search, then the filters, then a stable sort.
// The input slice is never modified and the result is a fresh slice.
func Evaluate(models []catalogs.Model, q string, s Settings) []catalogs.Model {
	q = strings.TrimSpace(q)
	s = s.Normalize()
	needle := strings.ToLower(q)

	results := make([]catalogs.Model, 0, len(models))
	for _, m := range models {
		if needle != "" && !MatchesText(m, needle) {
			continue
		}
		if !Matches(m, s) {
			continue
		}
		results = append(results, m)
	}

	sortModels(results, needle, s.SortBy)
	return results
}

// MatchesText reports whether the lower-cased needle occurs in any searchable
// field of the model.
func MatchesText(m catalogs.Model, needle string) bool {
	if needle == "" {
		return true
	}
	for _, field := range []string{m.Name, m.Provider, m.Description} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	for _, tags := range [][]string{m.Capabilities, m.InputTypes, m.OutputTypes, m.UseCases} {
		for _, tag := range tags {
			if strings.Contains(strings.ToLower(tag), needle) {
				return true
			}
		}
	}
	return false
}

// Matches reports whether the model passes every filter in s.
func Matches(m catalogs.Model, s Settings) bool {
	return matchesPricing(m, s) &&
		containsAny(m.Capabilities, s.Capabilities) &&
		containsAny(m.InputTypes, s.InputTypes) &&
		containsAny(m.OutputTypes, s.OutputTypes)
}

func matchesPricing(m catalogs.Model, s Settings) bool {
	if s.FreeOnly && !m.Pricing.Free {
		return false
	}
	if s.FreeTrials && !m.Pricing.FreeTrial {
		return false
	}
	if limit, ok := s.BudgetLimit(); ok && m.Pricing.Cost > limit {
		return false
	}
	return true
}

// containsAny checks if tags hold at least one selected value.
// An empty selection matches everything.
func containsAny(tags, selected []string) bool {
	if len(selected) == 0 {
		return true
	}
	for _, want := range selected {
		for _, tag := range tags {
			if strings.EqualFold(tag, want) {
				return true
			}
		}
	}
	return false
}

func sortModels(models []catalogs.Model, needle string, key SortKey) {
	switch key {
	case SortName:
		sort.SliceStable(models, func(i, j int) bool {
			return lessName(models[i], models[j])
		})
	case SortCostAsc:
		sort.SliceStable(models, func(i, j int) bool {
			return models[i].Pricing.Cost < models[j].Pricing.Cost
		})
	case SortCostDesc:
		sort.SliceStable(models, func(i, j int) bool {
			return models[i].Pricing.Cost > models[j].Pricing.Cost
		})
	case SortRelevance:
		if needle == "" {
			sortModels(models, needle, SortName)
			return
		}
		sort.SliceStable(models, func(i, j int) bool {
			return relevance(models[i], needle) > relevance(models[j], needle)
		})
	}
}

func lessName(a, b catalogs.Model) bool {
	return strings.ToLower(a.Name) < strings.ToLower(b.Name)
}

// relevance ranks how well the model name matches the needle.
func relevance(m catalogs.Model, needle string) int {
	name := strings.ToLower(m.Name)
	switch {
	case name == needle:
		return 3
	case strings.HasPrefix(name, needle):
		return 2
	case strings.Contains(name, needle):
		return 1
	default:
		return 0
	}
}
