// Package cmdutil provides shared flags for ainything commands.
package cmdutil

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/ainything/pkg/query"
)

// FilterFlags holds the search, filter and sort flags shared by commands
// that evaluate the catalog.
type FilterFlags struct {
	Search      string
	FreeOnly    bool
	FreeTrials  bool
	Capability  []string
	InputType   []string
	OutputType  []string
	MaxBudget   string
	Sort        string
	sortChanged func() bool
}

// AddFilterFlags adds the filter flags to a command.
func AddFilterFlags(cmd *cobra.Command) *FilterFlags {
	flags := &FilterFlags{}

	cmd.Flags().StringVarP(&flags.Search, "search", "s", "",
		"Case-insensitive text search")
	cmd.Flags().BoolVar(&flags.FreeOnly, "free-only", false,
		"Only models usable without paying")
	cmd.Flags().BoolVar(&flags.FreeTrials, "free-trials", false,
		"Only models offering a free trial")
	cmd.Flags().StringSliceVar(&flags.Capability, "capability", nil,
		"Capability filter, any of (repeatable, comma-separated)")
	cmd.Flags().StringSliceVar(&flags.InputType, "input-type", nil,
		"Input type filter, any of (repeatable, comma-separated)")
	cmd.Flags().StringSliceVar(&flags.OutputType, "output-type", nil,
		"Output type filter, any of (repeatable, comma-separated)")
	cmd.Flags().StringVar(&flags.MaxBudget, "max-budget", "",
		"Monthly budget cap in USD (50 or more means no cap)")
	cmd.Flags().StringVar(&flags.Sort, "sort", "",
		"Sort: name, cost-asc, cost-desc, relevance (default catalog order)")

	flags.sortChanged = func() bool { return cmd.Flags().Changed("sort") }

	return flags
}

// Settings merges the flags over defaults. Only the sort key falls back to
// the default when not given; every filter flag applies as written.
func (f *FilterFlags) Settings(defaults query.Settings) query.Settings {
	s := query.Settings{
		FreeOnly:     f.FreeOnly,
		FreeTrials:   f.FreeTrials,
		Capabilities: query.SplitValues(f.Capability...),
		InputTypes:   query.SplitValues(f.InputType...),
		OutputTypes:  query.SplitValues(f.OutputType...),
		MaxBudget:    query.ParseBudget(f.MaxBudget),
		SortBy:       defaults.SortBy,
	}
	if f.Sort != "" || (f.sortChanged != nil && f.sortChanged()) {
		s.SortBy = query.ParseSortKey(f.Sort)
	}
	return s.Normalize()
}

// Command group IDs.
const (
	GroupCore        = "core"
	GroupInteractive = "interactive"
)

// AnnotationLogOutput marks commands that need logging redirected away from
// the terminal. The only supported value is LogOutputFile.
const (
	AnnotationLogOutput = "ainything/log-output"
	LogOutputFile       = "file"
)
