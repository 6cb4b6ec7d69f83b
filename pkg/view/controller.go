// Package view owns the browsing session state: the query, the filter
// settings, the list/detail mode and the URL fragment. Every action is
// applied synchronously and followed by a recompute and a render.
package view

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/constants"
	"github.com/agentstation/ainything/pkg/content"
	"github.com/agentstation/ainything/pkg/errors"
	"github.com/agentstation/ainything/pkg/fragment"
	"github.com/agentstation/ainything/pkg/logging"
	"github.com/agentstation/ainything/pkg/query"
)

// Controller is the session state machine. It is not safe for concurrent
// use; callers serialize Start and Dispatch.
type Controller struct {
	loader   catalogs.Loader
	content  content.Renderer
	aboutID  string
	renderer Renderer
	evaluate query.Evaluator
	logger   *zerolog.Logger

	catalog  *catalogs.Catalog
	facets   query.Facets
	query    string
	settings query.Settings
	mode     Mode
	selected string
	notice   string
	err      *ErrorState
	about    AboutState
	fragment string
	results  []catalogs.Model
}

// Option configures a Controller.
type Option func(*Controller)

// WithRenderer sets the presentation callback invoked after every transition.
func WithRenderer(r Renderer) Option {
	return func(c *Controller) { c.renderer = r }
}

// WithContent sets the About document source and identifier.
func WithContent(r content.Renderer, id string) Option {
	return func(c *Controller) {
		c.content = r
		if id != "" {
			c.aboutID = id
		}
	}
}

// WithEvaluator replaces the query evaluator.
func WithEvaluator(e query.Evaluator) Option {
	return func(c *Controller) {
		if e != nil {
			c.evaluate = e
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zerolog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSettings sets the initial filter settings.
func WithSettings(s query.Settings) Option {
	return func(c *Controller) { c.settings = s.Normalize() }
}

// New creates a controller that loads its catalog from loader.
func New(loader catalogs.Loader, opts ...Option) *Controller {
	c := &Controller{
		loader:   loader,
		aboutID:  constants.DefaultAboutDocument,
		evaluate: query.Evaluate,
		logger:   logging.Default(),
		settings: query.DefaultSettings(),
		mode:     ModeList,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Start loads the About content and the catalog, then applies the initial
// fragment. Failures are reported in the snapshot, never returned.
func (c *Controller) Start(ctx context.Context, initial string) Snapshot {
	c.loadAbout(ctx)
	if c.loadCatalog(ctx) {
		c.applyFragment(initial)
		c.recompute()
	}
	return c.render()
}

// Dispatch applies one action and returns the resulting snapshot.
func (c *Controller) Dispatch(ctx context.Context, a Action) Snapshot {
	if a == nil {
		return c.Snapshot()
	}
	c.logger.Debug().Str("action", a.Kind()).Msg("dispatch")

	switch act := a.(type) {
	case SearchSubmitted:
		c.notice = ""
		c.query = strings.TrimSpace(act.Input)
	case FiltersApplied:
		c.notice = ""
		c.settings = act.Settings.Normalize()
	case SortChanged:
		c.notice = ""
		c.settings.SortBy = query.ParseSortKey(string(act.SortBy))
	case ModelSelected:
		c.notice = ""
		c.selectModel(act.Name)
	case BackRequested:
		c.notice = ""
		c.back()
	case URLChanged:
		c.applyFragment(act.Fragment)
	case RetryRequested:
		c.notice = ""
		if !c.loadCatalog(ctx) {
			return c.render()
		}
	}

	c.recompute()
	return c.render()
}

// Snapshot returns the current state without rendering.
func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Loaded:   c.catalog != nil,
		Mode:     c.mode,
		Query:    c.query,
		Settings: c.settings,
		Results:  c.results,
		Summary:  Summarize(len(c.results), c.query, c.settings),
		Notice:   c.notice,
		Error:    c.err,
		About:    c.about,
		Fragment: c.fragment,
		Facets:   c.facets,
	}
	if s.Results == nil {
		s.Results = []catalogs.Model{}
	}
	if c.mode == ModeDetail {
		if m, err := c.catalog.Find(c.selected); err == nil {
			s.Detail = &m
		}
	}
	return s
}

func (c *Controller) render() Snapshot {
	s := c.Snapshot()
	if c.renderer != nil {
		c.renderer.Render(s)
	}
	return s
}

// loadCatalog runs the loader. On failure the previous catalog is kept
// out of view behind a load error.
func (c *Controller) loadCatalog(ctx context.Context) bool {
	cat, err := catalogs.LoadCatalog(ctx, c.loader)
	if err != nil {
		c.logger.Error().Err(err).Msg("failed to load catalog")
		c.err = &ErrorState{Kind: ErrorLoad, Message: err.Error(), Retryable: true}
		c.results = nil
		return false
	}

	c.catalog = cat
	c.facets = query.ExtractFacets(cat.Models())
	c.err = nil
	if c.mode == ModeDetail && !cat.Has(c.selected) {
		c.back()
	}
	c.logger.Debug().Int("models", cat.Len()).Msg("catalog loaded")
	return true
}

func (c *Controller) loadAbout(ctx context.Context) {
	if c.content == nil {
		return
	}
	c.about = LoadAbout(ctx, c.content, c.aboutID)
	if c.about.Err != "" {
		c.logger.Warn().Str("document", c.aboutID).Str("error", c.about.Err).Msg("failed to load about content")
	}
}

// LoadAbout renders the About document. Failures are reported in the
// returned state and never affect the rest of the view.
func LoadAbout(ctx context.Context, r content.Renderer, id string) AboutState {
	doc, err := r.Render(ctx, id)
	switch {
	case err != nil:
		return AboutState{Err: "Error loading About content: " + err.Error()}
	case doc.Empty():
		return AboutState{Err: "Failed to load About content."}
	default:
		return AboutState{Document: doc}
	}
}

func (c *Controller) selectModel(name string) {
	if c.catalog.Has(name) {
		c.mode = ModeDetail
		c.selected = name
		c.fragment = fragment.ForModel(name)
		return
	}
	c.back()
	c.notice = NotFoundNotice(name)
}

func (c *Controller) back() {
	c.mode = ModeList
	c.selected = ""
	c.fragment = ""
}

// applyFragment handles inbound navigation. A model key wins over a search
// key; malformed input changes nothing.
func (c *Controller) applyFragment(raw string) {
	st, err := fragment.Parse(raw)
	if err != nil {
		c.logger.Debug().Err(err).Msg("ignoring malformed fragment")
		return
	}
	if c.catalog == nil {
		return
	}

	switch {
	case st.Model != "":
		c.notice = ""
		c.selectModel(st.Model)
	case st.Search != "":
		c.notice = ""
		c.query = strings.TrimSpace(st.Search)
		c.back()
		c.fragment = fragment.Encode(fragment.State{Search: st.Search})
	}
}

// recompute evaluates the current query. A failing evaluator leaves the
// catalog and mode intact and surfaces an evaluation error.
func (c *Controller) recompute() {
	if c.catalog == nil {
		return
	}
	if c.err != nil && c.err.Kind == ErrorEvaluation {
		c.err = nil
	}

	results, err := c.safeEvaluate(c.catalog.Models())
	if err != nil {
		c.logger.Error().Err(err).Str("query", c.query).Msg("failed to evaluate query")
		c.err = &ErrorState{Kind: ErrorEvaluation, Message: "Error filtering results: " + err.Error()}
		c.results = nil
		return
	}
	c.results = results
}

func (c *Controller) safeEvaluate(models []catalogs.Model) (results []catalogs.Model, err error) {
	defer func() {
		if r := recover(); r != nil {
			cause, ok := r.(error)
			if !ok {
				cause = fmt.Errorf("%v", r)
			}
			err = errors.NewEvaluationError(c.query, cause)
		}
	}()
	return c.evaluate(models, c.query, c.settings), nil
}

// NotFoundNotice is the message shown when a requested model does not exist.
func NotFoundNotice(name string) string {
	return fmt.Sprintf("Model \"%s\" not found", name)
}
