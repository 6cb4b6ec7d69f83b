package query

import (
	"sort"
	"strings"

	"github.com/agentstation/ainything/pkg/catalogs"
)

// Facets holds the distinct values offered by each filter control.
type Facets struct {
	Capabilities []string `json:"capabilities" yaml:"capabilities"`
	InputTypes   []string `json:"input_types" yaml:"input_types"`
	OutputTypes  []string `json:"output_types" yaml:"output_types"`
}

// ExtractFacets collects all three facets from models.
func ExtractFacets(models []catalogs.Model) Facets {
	return Facets{
		Capabilities: Capabilities(models),
		InputTypes:   InputTypes(models),
		OutputTypes:  OutputTypes(models),
	}
}

// Capabilities returns the distinct capability values in alphabetical order.
func Capabilities(models []catalogs.Model) []string {
	return distinct(models, func(m catalogs.Model) []string { return m.Capabilities })
}

// InputTypes returns the distinct input type values in alphabetical order.
func InputTypes(models []catalogs.Model) []string {
	return distinct(models, func(m catalogs.Model) []string { return m.InputTypes })
}

// OutputTypes returns the distinct output type values in alphabetical order.
func OutputTypes(models []catalogs.Model) []string {
	return distinct(models, func(m catalogs.Model) []string { return m.OutputTypes })
}

// distinct dedupes case-insensitively, keeping the first spelling seen.
func distinct(models []catalogs.Model, values func(catalogs.Model) []string) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, m := range models {
		for _, v := range values(m) {
			v = strings.TrimSpace(v)
			if v == "" {
				continue
			}
			key := strings.ToLower(v)
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, v)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := strings.ToLower(out[i]), strings.ToLower(out[j])
		if a != b {
			return a < b
		}
		return out[i] < out[j]
	})
	return out
}
