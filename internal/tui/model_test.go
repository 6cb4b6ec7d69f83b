package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/content"
	"github.com/agentstation/ainything/pkg/errors"
	"github.com/agentstation/ainything/pkg/logging"
	"github.com/agentstation/ainything/pkg/query"
	"github.com/agentstation/ainything/pkg/view"
)

func sampleLoader() catalogs.Loader {
	return catalogs.LoaderFunc(func(context.Context) ([]catalogs.Model, error) {
		return catalogs.SampleModels(), nil
	})
}

func newTestModel(t *testing.T, loader catalogs.Loader, initial string, opts ...view.Option) *Model {
	t.Helper()
	opts = append([]view.Option{view.WithLogger(logging.NewNopLogger())}, opts...)
	session := view.New(loader, opts...)
	m := New(context.Background(), session, Options{
		Initial:      initial,
		BaseURL:      "https://example.test/",
		GlamourStyle: "notty",
	})
	cmd := m.Init()
	require.NotNil(t, cmd)
	m.Update(cmd())
	return m
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func press(m *Model, keys ...string) {
	for _, k := range keys {
		m.Update(keyMsg(k))
	}
}

func typeText(m *Model, text string) {
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func resultNames(s view.Snapshot) []string {
	names := make([]string, 0, len(s.Results))
	for _, m := range s.Results {
		names = append(names, m.Name)
	}
	return names
}

func TestModel_Init(t *testing.T) {
	m := newTestModel(t, sampleLoader(), "")

	snap := m.Snapshot()
	assert.True(t, snap.Loaded)
	assert.Len(t, snap.Results, 4)
	assert.Equal(t, "All AI Models", snap.Summary.Heading)

	out := m.View()
	assert.Contains(t, out, "All AI Models")
	assert.Contains(t, out, "Showing 4 models")
	assert.Contains(t, out, "GPT-4o")
}

func TestModel_IgnoresKeysWhileLoading(t *testing.T) {
	session := view.New(sampleLoader(), view.WithLogger(logging.NewNopLogger()))
	m := New(context.Background(), session, Options{GlamourStyle: "notty"})

	press(m, "/")
	assert.Equal(t, focusList, m.focus)
	assert.Contains(t, m.View(), "Loading catalog...")
}

func TestModel_Search(t *testing.T) {
	m := newTestModel(t, sampleLoader(), "")

	press(m, "/")
	require.Equal(t, focusSearch, m.focus)
	typeText(m, "openai")
	press(m, "enter")

	snap := m.Snapshot()
	assert.Equal(t, focusList, m.focus)
	assert.Equal(t, "openai", snap.Query)
	assert.ElementsMatch(t, []string{"GPT-4o", "Whisper"}, resultNames(snap))
	assert.Equal(t, `Results for "openai"`, snap.Summary.Heading)

	// Clearing the search restores the full list
	press(m, "esc")
	assert.Len(t, m.Snapshot().Results, 4)
}

func TestModel_SearchKeysDoNotTriggerCommands(t *testing.T) {
	m := newTestModel(t, sampleLoader(), "")

	press(m, "/")
	typeText(m, "qsf")
	assert.Equal(t, focusSearch, m.focus)
	assert.False(t, m.quitting)

	press(m, "esc")
	assert.Equal(t, focusList, m.focus)
	assert.Equal(t, "", m.Snapshot().Query)
}

func TestModel_DetailNavigation(t *testing.T) {
	m := newTestModel(t, sampleLoader(), "")

	press(m, "down", "enter")
	snap := m.Snapshot()
	require.Equal(t, view.ModeDetail, snap.Mode)
	require.NotNil(t, snap.Detail)
	assert.Equal(t, "Claude", snap.Detail.Name)
	assert.Equal(t, "model=Claude", snap.Fragment)
	assert.Contains(t, m.View(), "Anthropic")

	press(m, "y")
	assert.Contains(t, m.View(), "https://example.test/#model=Claude")

	press(m, "esc")
	assert.Equal(t, view.ModeList, m.Snapshot().Mode)
	assert.Equal(t, "", m.Snapshot().Fragment)
}

func TestModel_InitialFragment(t *testing.T) {
	tests := []struct {
		name     string
		initial  string
		mode     view.Mode
		notice   string
		query    string
		detailed string
	}{
		{name: "model", initial: "#model=Midjourney", mode: view.ModeDetail, detailed: "Midjourney"},
		{name: "unknown model", initial: "#model=Nope", mode: view.ModeList, notice: `Model "Nope" not found`},
		{name: "search", initial: "#search=claude", mode: view.ModeList, query: "claude"},
		{name: "malformed", initial: "#search=%zz", mode: view.ModeList},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, sampleLoader(), tt.initial)
			snap := m.Snapshot()

			assert.Equal(t, tt.mode, snap.Mode)
			assert.Equal(t, tt.notice, snap.Notice)
			assert.Equal(t, tt.query, snap.Query)
			if tt.detailed != "" {
				require.NotNil(t, snap.Detail)
				assert.Equal(t, tt.detailed, snap.Detail.Name)
			}
			if tt.notice != "" {
				assert.Contains(t, m.View(), tt.notice)
			}
		})
	}
}

func TestModel_Goto(t *testing.T) {
	m := newTestModel(t, sampleLoader(), "")

	press(m, ":")
	require.Equal(t, focusGoto, m.focus)
	typeText(m, "https://ainything.ai/#model=Whisper")
	press(m, "enter")

	snap := m.Snapshot()
	require.NotNil(t, snap.Detail)
	assert.Equal(t, "Whisper", snap.Detail.Name)
}

func TestModel_Filters(t *testing.T) {
	tests := []struct {
		name  string
		keys  []string
		check func(t *testing.T, s query.Settings)
	}{
		{
			name: "free only",
			keys: []string{"space"},
			check: func(t *testing.T, s query.Settings) {
				assert.True(t, s.FreeOnly)
			},
		},
		{
			name: "free trials",
			keys: []string{"down", "space"},
			check: func(t *testing.T, s query.Settings) {
				assert.True(t, s.FreeTrials)
			},
		},
		{
			name: "budget",
			keys: []string{"down", "down", "left", "left", "left", "left", "left", "left", "left", "left"},
			check: func(t *testing.T, s query.Settings) {
				assert.Equal(t, query.Budget(10), s.MaxBudget)
			},
		},
		{
			name: "first capability",
			keys: []string{"down", "down", "down", "space"},
			check: func(t *testing.T, s query.Settings) {
				assert.Equal(t, []string{"chat"}, s.Capabilities)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, sampleLoader(), "")

			press(m, "f")
			require.Equal(t, focusFilters, m.focus)
			assert.Contains(t, m.View(), "Filters")

			press(m, tt.keys...)
			press(m, "enter")

			snap := m.Snapshot()
			assert.Equal(t, focusList, m.focus)
			tt.check(t, snap.Settings)
			assert.True(t, snap.Settings.HasActiveFilters())
			assert.Equal(t, "Filtered AI Models", snap.Summary.Heading)

			want := query.Evaluate(catalogs.SampleModels(), "", snap.Settings)
			assert.Len(t, snap.Results, len(want))
		})
	}
}

func TestModel_FiltersCancel(t *testing.T) {
	m := newTestModel(t, sampleLoader(), "")

	press(m, "f", "space", "esc")
	assert.Equal(t, focusList, m.focus)
	assert.False(t, m.Snapshot().Settings.HasActiveFilters())
}

func TestModel_SortCycles(t *testing.T) {
	m := newTestModel(t, sampleLoader(), "")

	press(m, "s")
	assert.Equal(t, query.SortName, m.Snapshot().Settings.SortBy)
	assert.Equal(t, []string{"Claude", "GPT-4o", "Midjourney", "Whisper"}, resultNames(m.Snapshot()))
	assert.Contains(t, m.View(), "Sorted by name")

	press(m, "s")
	assert.Equal(t, query.SortCostAsc, m.Snapshot().Settings.SortBy)

	press(m, "s", "s", "s")
	assert.Equal(t, query.SortCatalog, m.Snapshot().Settings.SortBy)
}

func TestModel_LoadFailureRetry(t *testing.T) {
	calls := 0
	loader := catalogs.LoaderFunc(func(context.Context) ([]catalogs.Model, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("network down")
		}
		return catalogs.SampleModels(), nil
	})

	m := newTestModel(t, loader, "")
	snap := m.Snapshot()
	require.NotNil(t, snap.Error)
	assert.Equal(t, view.ErrorLoad, snap.Error.Kind)
	assert.Contains(t, m.View(), "network down")
	assert.Contains(t, m.View(), "Press r to retry")

	// Other commands are unavailable until the catalog loads
	press(m, "/")
	assert.Equal(t, focusList, m.focus)

	_, cmd := m.Update(keyMsg("r"))
	require.NotNil(t, cmd)
	m.Update(cmd())

	snap = m.Snapshot()
	assert.Nil(t, snap.Error)
	assert.Len(t, snap.Results, 4)
	assert.Equal(t, 2, calls)
}

func TestModel_About(t *testing.T) {
	t.Run("document", func(t *testing.T) {
		renderer := content.RendererFunc(func(_ context.Context, id string) (*content.Document, error) {
			return &content.Document{ID: id, Markdown: "# About\n\nA directory of AI tools."}, nil
		})
		m := newTestModel(t, sampleLoader(), "", view.WithContent(renderer, ""))

		press(m, "a")
		assert.Equal(t, focusAbout, m.focus)
		assert.Contains(t, m.View(), "A directory of AI tools.")

		press(m, "esc")
		assert.Equal(t, focusList, m.focus)
		assert.Contains(t, m.View(), "All AI Models")
	})

	t.Run("failure", func(t *testing.T) {
		renderer := content.RendererFunc(func(context.Context, string) (*content.Document, error) {
			return nil, errors.New("missing file")
		})
		m := newTestModel(t, sampleLoader(), "", view.WithContent(renderer, ""))

		// The catalog is unaffected by the About failure
		assert.Len(t, m.Snapshot().Results, 4)

		press(m, "a")
		assert.Contains(t, m.View(), "Error loading About content: missing file")
	})
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, sampleLoader(), "")

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Equal(t, "", m.View())
}

func TestModel_Resize(t *testing.T) {
	m := newTestModel(t, sampleLoader(), "")

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 34, m.viewport.Height)
}
