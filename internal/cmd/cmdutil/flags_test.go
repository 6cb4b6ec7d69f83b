package cmdutil

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ainything/pkg/query"
)

func parse(t *testing.T, args ...string) *FilterFlags {
	t.Helper()
	cmd := &cobra.Command{Use: "test", RunE: func(*cobra.Command, []string) error { return nil }}
	flags := AddFilterFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return flags
}

func TestFilterFlags_Settings(t *testing.T) {
	defaults := query.DefaultSettings()
	defaults.SortBy = query.SortName

	tests := []struct {
		name  string
		args  []string
		check func(t *testing.T, s query.Settings)
	}{
		{
			name: "no flags",
			check: func(t *testing.T, s query.Settings) {
				assert.False(t, s.HasActiveFilters())
				assert.Equal(t, query.SortName, s.SortBy)
			},
		},
		{
			name: "facets repeat and split",
			args: []string{"--capability", "chat,vision", "--capability", "coding", "--input-type", "image"},
			check: func(t *testing.T, s query.Settings) {
				assert.Equal(t, []string{"chat", "vision", "coding"}, s.Capabilities)
				assert.Equal(t, []string{"image"}, s.InputTypes)
			},
		},
		{
			name: "budget and pricing",
			args: []string{"--max-budget", "15", "--free-trials"},
			check: func(t *testing.T, s query.Settings) {
				assert.Equal(t, query.Budget(15), s.MaxBudget)
				assert.True(t, s.FreeTrials)
			},
		},
		{
			name: "malformed budget",
			args: []string{"--max-budget", "lots"},
			check: func(t *testing.T, s query.Settings) {
				assert.False(t, s.BudgetCapped())
			},
		},
		{
			name: "explicit sort",
			args: []string{"--sort", "cost-desc"},
			check: func(t *testing.T, s query.Settings) {
				assert.Equal(t, query.SortCostDesc, s.SortBy)
			},
		},
		{
			name: "explicit empty sort resets to catalog order",
			args: []string{"--sort="},
			check: func(t *testing.T, s query.Settings) {
				assert.Equal(t, query.SortCatalog, s.SortBy)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, parse(t, tt.args...).Settings(defaults))
		})
	}
}

func TestFilterFlags_Search(t *testing.T) {
	assert.Equal(t, "chat", parse(t, "-s", "chat").Search)
}
