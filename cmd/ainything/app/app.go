// Package app provides the application context and dependency management
// for the ainything CLI. It centralizes configuration, logging and the
// lazily loaded catalog, and hands them to commands through
// application.Application.
package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agentstation/ainything/cmd/application"
	"github.com/agentstation/ainything/internal/embedded"
	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/constants"
	"github.com/agentstation/ainything/pkg/content"
	"github.com/agentstation/ainything/pkg/errors"
	"github.com/agentstation/ainything/pkg/logging"
	"github.com/agentstation/ainything/pkg/query"
)

// App represents the ainything application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	config *Config
	logger *zerolog.Logger

	// Catalog source and the loaded catalog (lazy, cached on success)
	mu      sync.RWMutex
	loader  catalogs.Loader
	catalog *catalogs.Catalog
}

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapResource("load", "config", "", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured output format.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// BaseURL returns the base URL for shareable links.
func (a *App) BaseURL() string {
	if a.config.BaseURL == "" {
		return constants.DefaultBaseURL
	}
	return a.config.BaseURL
}

// GlamourStyle returns the terminal markdown style. Colour is disabled by
// switching to the "notty" style.
func (a *App) GlamourStyle() string {
	if a.config.NoColor {
		return "notty"
	}
	if a.config.GlamourStyle == "" {
		return constants.DefaultGlamourStyle
	}
	return a.config.GlamourStyle
}

// DefaultSettings returns the settings new sessions start with.
func (a *App) DefaultSettings() query.Settings {
	s := query.DefaultSettings()
	s.SortBy = query.ParseSortKey(a.config.DefaultSort)
	return s
}

// Content returns the renderer for the embedded documents.
func (a *App) Content() content.Renderer {
	return embedded.ContentRenderer()
}

// CatalogLoader returns the configured catalog loader: a remote catalog
// when catalog_url is set, a local file when catalog_path is set, the
// embedded catalog otherwise.
func (a *App) CatalogLoader() catalogs.Loader {
	a.mu.RLock()
	if a.loader != nil {
		l := a.loader
		a.mu.RUnlock()
		return l
	}
	a.mu.RUnlock()

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.loader == nil {
		a.loader = a.newLoader()
	}
	return a.loader
}

func (a *App) newLoader() catalogs.Loader {
	switch {
	case a.config.CatalogURL != "":
		return catalogs.NewHTTPLoader(a.config.CatalogURL, a.config.LoadTimeout)
	case a.config.CatalogPath != "":
		return catalogs.NewFileLoader(logging.ExpandPath(a.config.CatalogPath))
	default:
		return embedded.CatalogLoader()
	}
}

// Catalog returns the catalog, loading it on first use. A failed load is
// not cached, so a later call tries again.
func (a *App) Catalog(ctx context.Context) (*catalogs.Catalog, error) {
	a.mu.RLock()
	if a.catalog != nil {
		cat := a.catalog
		a.mu.RUnlock()
		return cat, nil
	}
	a.mu.RUnlock()

	loader := a.CatalogLoader()

	a.mu.Lock()
	defer a.mu.Unlock()

	// Double-check after acquiring write lock
	if a.catalog != nil {
		return a.catalog, nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.config.LoadTimeout)
	defer cancel()

	cat, err := catalogs.LoadCatalog(ctx, loader)
	if err != nil {
		return nil, err
	}
	a.logger.Debug().Int("models", cat.Len()).Msg("Catalog loaded")

	a.catalog = cat
	return cat, nil
}

// Shutdown performs graceful shutdown of the application.
func (a *App) Shutdown(_ context.Context) error {
	a.logger.Debug().Msg("Shutting down")
	return nil
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}

// WithLoader sets the catalog loader (useful for testing).
func WithLoader(loader catalogs.Loader) Option {
	return func(a *App) error {
		a.loader = loader
		return nil
	}
}

// Ensure App implements application.Application at compile time.
var _ application.Application = (*App)(nil)
