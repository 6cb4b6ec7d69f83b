package view

import (
	"fmt"

	"github.com/agentstation/ainything/pkg/query"
)

// Summary is the heading and count line above the results.
type Summary struct {
	Heading string `json:"heading"`
	Count   string `json:"count"`
	Total   int    `json:"total"`
}

// Summarize builds the result summary for a result count, query and settings.
func Summarize(count int, q string, s query.Settings) Summary {
	filtered := s.HasActiveFilters()

	var heading string
	switch {
	case q != "" && filtered:
		heading = fmt.Sprintf(`Results for "%s" with filters`, q)
	case q != "":
		heading = fmt.Sprintf(`Results for "%s"`, q)
	case filtered:
		heading = "Filtered AI Models"
	default:
		heading = "All AI Models"
	}

	return Summary{
		Heading: heading,
		Count:   CountText(count),
		Total:   count,
	}
}

// CountText returns "Showing N models", singular for one.
func CountText(count int) string {
	if count == 1 {
		return "Showing 1 model"
	}
	return fmt.Sprintf("Showing %d models", count)
}
