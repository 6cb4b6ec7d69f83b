package output

import (
	"io"

	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/query"
)

// FormatModels writes models in the given format. Tabular formats get a
// row per model; the others get the records themselves.
func FormatModels(w io.Writer, models []catalogs.Model, format Format) error {
	var data any = models
	if format.IsTabular() {
		data = ModelsToTableData(models, format == FormatWide)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatModel writes a single model.
func FormatModel(w io.Writer, m catalogs.Model, format Format) error {
	var data any = m
	if format.IsTabular() {
		data = ModelDetailData(m)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatFacets writes the facet values.
func FormatFacets(w io.Writer, f query.Facets, format Format) error {
	var data any = f
	if format.IsTabular() {
		data = FacetsToTableData(f)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatAny writes arbitrary data. Tabular formats fall back to JSON.
func FormatAny(w io.Writer, data any, format Format) error {
	return NewFormatter(format).Format(w, data)
}
