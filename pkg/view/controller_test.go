package view

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/content"
	"github.com/agentstation/ainything/pkg/errors"
	"github.com/agentstation/ainything/pkg/logging"
	"github.com/agentstation/ainything/pkg/query"
)

func staticLoader(models ...catalogs.Model) catalogs.Loader {
	return catalogs.LoaderFunc(func(context.Context) ([]catalogs.Model, error) {
		return models, nil
	})
}

func resultNames(s Snapshot) []string {
	out := []string{}
	for _, m := range s.Results {
		out = append(out, m.Name)
	}
	return out
}

func newStarted(t *testing.T, fragment string, opts ...Option) (*Controller, Snapshot) {
	t.Helper()
	opts = append([]Option{WithLogger(logging.NewNopLogger())}, opts...)
	c := New(staticLoader(catalogs.SampleModels()...), opts...)
	return c, c.Start(context.Background(), fragment)
}

func TestStart(t *testing.T) {
	var rendered []Snapshot
	_, s := newStarted(t, "", WithRenderer(RendererFunc(func(s Snapshot) {
		rendered = append(rendered, s)
	})))

	require.Len(t, rendered, 1)
	assert.True(t, s.Loaded)
	assert.Nil(t, s.Error)
	assert.Equal(t, ModeList, s.Mode)
	assert.Equal(t, []string{"GPT-4o", "Claude", "Midjourney", "Whisper"}, resultNames(s))
	assert.Equal(t, "All AI Models", s.Summary.Heading)
	assert.Equal(t, "Showing 4 models", s.Summary.Count)
	assert.Contains(t, s.Facets.Capabilities, "vision")
}

func TestDispatchTransitions(t *testing.T) {
	ctx := context.Background()
	c, _ := newStarted(t, "")

	s := c.Dispatch(ctx, SearchSubmitted{Input: "  openai "})
	assert.Equal(t, "openai", s.Query)
	assert.Equal(t, []string{"GPT-4o", "Whisper"}, resultNames(s))
	assert.Equal(t, `Results for "openai"`, s.Summary.Heading)

	filters := query.DefaultSettings()
	filters.FreeOnly = true
	filters.SortBy = query.SortName
	s = c.Dispatch(ctx, FiltersApplied{Settings: filters})
	assert.Equal(t, []string{"Whisper"}, resultNames(s))
	assert.Equal(t, `Results for "openai" with filters`, s.Summary.Heading)
	assert.Equal(t, "Showing 1 model", s.Summary.Count)

	s = c.Dispatch(ctx, SearchSubmitted{Input: ""})
	assert.Equal(t, "Filtered AI Models", s.Summary.Heading)
	assert.Equal(t, []string{"Claude", "Whisper"}, resultNames(s))

	// Sort merges into the current settings.
	s = c.Dispatch(ctx, SortChanged{SortBy: query.SortCostDesc})
	assert.True(t, s.Settings.FreeOnly)
	assert.Equal(t, query.SortCostDesc, s.Settings.SortBy)
	assert.Equal(t, []string{"Claude", "Whisper"}, resultNames(s))

	// Applying filters replaces settings wholesale, sort included.
	s = c.Dispatch(ctx, FiltersApplied{Settings: query.DefaultSettings()})
	assert.False(t, s.Settings.FreeOnly)
	assert.Equal(t, query.SortCatalog, s.Settings.SortBy)
	assert.Equal(t, "All AI Models", s.Summary.Heading)
}

func TestModelSelection(t *testing.T) {
	ctx := context.Background()
	c, _ := newStarted(t, "")

	s := c.Dispatch(ctx, ModelSelected{Name: "Stable Diffusion"})
	assert.Equal(t, ModeList, s.Mode)
	assert.Equal(t, `Model "Stable Diffusion" not found`, s.Notice)
	assert.Nil(t, s.Detail)

	s = c.Dispatch(ctx, ModelSelected{Name: "Claude"})
	assert.Equal(t, ModeDetail, s.Mode)
	require.NotNil(t, s.Detail)
	assert.Equal(t, "Anthropic", s.Detail.Provider)
	assert.Equal(t, "model=Claude", s.Fragment)
	assert.Empty(t, s.Notice)

	s = c.Dispatch(ctx, BackRequested{})
	assert.Equal(t, ModeList, s.Mode)
	assert.Nil(t, s.Detail)
	assert.Empty(t, s.Fragment)
}

func TestURLNavigation(t *testing.T) {
	tests := []struct {
		name      string
		fragment  string
		mode      Mode
		detail    string
		query     string
		notice    string
		wantCount int
	}{
		{name: "model opens detail", fragment: "#model=GPT-4o", mode: ModeDetail, detail: "GPT-4o", wantCount: 4},
		{name: "unknown model stays on list", fragment: "#model=GPT-X", mode: ModeList, notice: `Model "GPT-X" not found`, wantCount: 4},
		{name: "model wins over search", fragment: "#search=whisper&model=Claude", mode: ModeDetail, detail: "Claude", wantCount: 4},
		{name: "search restores query", fragment: "#search=openai", mode: ModeList, query: "openai", wantCount: 2},
		{name: "percent encoded search", fragment: "#search=image%20generation", mode: ModeList, query: "image generation", wantCount: 1},
		{name: "malformed is a no-op", fragment: "#model=%ZZ", mode: ModeList, wantCount: 4},
		{name: "unknown keys ignored", fragment: "#tab=about", mode: ModeList, wantCount: 4},
		{name: "undecodable unknown key ignored", fragment: "#model=Claude&ref=100%", mode: ModeDetail, detail: "Claude", wantCount: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, s := newStarted(t, tt.fragment)
			assert.Equal(t, tt.mode, s.Mode)
			assert.Equal(t, tt.query, s.Query)
			assert.Equal(t, tt.notice, s.Notice)
			assert.Len(t, s.Results, tt.wantCount)
			if tt.detail != "" {
				require.NotNil(t, s.Detail)
				assert.Equal(t, tt.detail, s.Detail.Name)
			} else {
				assert.Nil(t, s.Detail)
			}
		})
	}
}

func TestURLChangedMalformedKeepsState(t *testing.T) {
	ctx := context.Background()
	c, _ := newStarted(t, "#model=Claude")

	before := c.Snapshot()
	after := c.Dispatch(ctx, URLChanged{Fragment: "#search=%"})
	assert.Equal(t, before, after)

	after = c.Dispatch(ctx, URLChanged{Fragment: "#model=Whisper"})
	require.NotNil(t, after.Detail)
	assert.Equal(t, "Whisper", after.Detail.Name)
}

func TestLoadFailureAndRetry(t *testing.T) {
	ctx := context.Background()
	calls := 0
	loader := catalogs.LoaderFunc(func(context.Context) ([]catalogs.Model, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("network unreachable")
		}
		return catalogs.SampleModels(), nil
	})

	logs := logging.NewTestLogger(t)
	c := New(loader, WithLogger(logs.Logger))

	s := c.Start(ctx, "#model=Claude")
	require.NotNil(t, s.Error)
	assert.Equal(t, ErrorLoad, s.Error.Kind)
	assert.True(t, s.Error.Retryable)
	assert.Contains(t, s.Error.Message, "network unreachable")
	assert.False(t, s.Loaded)
	assert.Empty(t, s.Results)
	logs.AssertContains(t, "failed to load catalog")

	s = c.Dispatch(ctx, RetryRequested{})
	assert.Nil(t, s.Error)
	assert.True(t, s.Loaded)
	assert.Len(t, s.Results, 4)
	assert.Equal(t, 2, calls)
}

func TestEvaluationFailure(t *testing.T) {
	ctx := context.Background()
	fail := true
	evaluator := func(models []catalogs.Model, q string, s query.Settings) []catalogs.Model {
		if fail && q == "boom" {
			panic(errors.New("index out of range"))
		}
		return query.Evaluate(models, q, s)
	}

	c, _ := newStarted(t, "", WithEvaluator(evaluator))
	c.Dispatch(ctx, ModelSelected{Name: "Claude"})

	s := c.Dispatch(ctx, SearchSubmitted{Input: "boom"})
	require.NotNil(t, s.Error)
	assert.Equal(t, ErrorEvaluation, s.Error.Kind)
	assert.Equal(t, "Error filtering results: index out of range", s.Error.Message)
	assert.False(t, s.Error.Retryable)
	assert.True(t, s.Loaded)
	assert.Equal(t, ModeDetail, s.Mode)

	s = c.Dispatch(ctx, SearchSubmitted{Input: "claude"})
	assert.Nil(t, s.Error)
	assert.Equal(t, []string{"Claude"}, resultNames(s))

	c.Dispatch(ctx, SearchSubmitted{Input: "boom"})
	fail = false
	s = c.Dispatch(ctx, SortChanged{SortBy: query.SortName})
	assert.Nil(t, s.Error)
}

func TestEvaluationPanicWithValue(t *testing.T) {
	c, _ := newStarted(t, "", WithEvaluator(func([]catalogs.Model, string, query.Settings) []catalogs.Model {
		panic("bad state")
	}))
	s := c.Snapshot()
	require.NotNil(t, s.Error)
	assert.Equal(t, "Error filtering results: bad state", s.Error.Message)
}

func TestAboutContent(t *testing.T) {
	tests := []struct {
		name    string
		render  content.RendererFunc
		wantErr string
		wantDoc bool
	}{
		{
			name: "loaded",
			render: func(_ context.Context, id string) (*content.Document, error) {
				return &content.Document{ID: id, Markdown: "# About"}, nil
			},
			wantDoc: true,
		},
		{
			name: "render error",
			render: func(context.Context, string) (*content.Document, error) {
				return nil, errors.New("404")
			},
			wantErr: "Error loading About content: 404",
		},
		{
			name: "empty document",
			render: func(context.Context, string) (*content.Document, error) {
				return &content.Document{}, nil
			},
			wantErr: "Failed to load About content.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, s := newStarted(t, "", WithContent(tt.render, "about"))
			assert.Equal(t, tt.wantErr, s.About.Err)
			assert.Equal(t, tt.wantDoc, s.About.Document != nil)
			// the rest of the view is unaffected
			assert.Nil(t, s.Error)
			assert.Len(t, s.Results, 4)
		})
	}
}

func TestDispatchBeforeStart(t *testing.T) {
	c := New(staticLoader(catalogs.SampleModels()...), WithLogger(logging.NewNopLogger()))

	s := c.Dispatch(context.Background(), SearchSubmitted{Input: "claude"})
	assert.False(t, s.Loaded)
	assert.Empty(t, s.Results)
	assert.Equal(t, "claude", s.Query)

	s = c.Dispatch(context.Background(), nil)
	assert.Equal(t, "claude", s.Query)
}

func TestWithSettings(t *testing.T) {
	s := query.DefaultSettings()
	s.SortBy = query.SortCostAsc
	_, snap := newStarted(t, "", WithSettings(s))
	assert.Equal(t, []string{"Whisper", "Midjourney", "GPT-4o", "Claude"}, resultNames(snap))
}
