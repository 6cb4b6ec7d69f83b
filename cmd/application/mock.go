package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/content"
	"github.com/agentstation/ainything/pkg/query"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default value.
type Mock struct {
	CatalogFunc         func(ctx context.Context) (*catalogs.Catalog, error)
	CatalogLoaderFunc   func() catalogs.Loader
	ContentFunc         func() content.Renderer
	DefaultSettingsFunc func() query.Settings
	BaseURLFunc         func() string
	LoggerFunc          func() *zerolog.Logger
	GlamourStyleFunc    func() string
	OutputFormatFunc    func() string
	VersionFunc         func() string
	CommitFunc          func() string
	DateFunc            func() string
	BuiltByFunc         func() string
}

// NewMock returns a mock serving the given models from memory.
func NewMock(models ...catalogs.Model) *Mock {
	loader := catalogs.LoaderFunc(func(context.Context) ([]catalogs.Model, error) {
		return models, nil
	})
	return &Mock{
		CatalogLoaderFunc: func() catalogs.Loader { return loader },
	}
}

// Catalog returns a catalog using the mock function, or loads one through
// CatalogLoader.
func (m *Mock) Catalog(ctx context.Context) (*catalogs.Catalog, error) {
	if m.CatalogFunc != nil {
		return m.CatalogFunc(ctx)
	}
	return catalogs.LoadCatalog(ctx, m.CatalogLoader())
}

// CatalogLoader returns a loader using the mock function or an empty loader.
func (m *Mock) CatalogLoader() catalogs.Loader {
	if m.CatalogLoaderFunc != nil {
		return m.CatalogLoaderFunc()
	}
	if m.CatalogFunc != nil {
		return catalogs.LoaderFunc(func(ctx context.Context) ([]catalogs.Model, error) {
			cat, err := m.CatalogFunc(ctx)
			if err != nil {
				return nil, err
			}
			return cat.Models(), nil
		})
	}
	return catalogs.LoaderFunc(func(context.Context) ([]catalogs.Model, error) {
		return nil, nil
	})
}

// Content returns a renderer using the mock function or nil.
func (m *Mock) Content() content.Renderer {
	if m.ContentFunc != nil {
		return m.ContentFunc()
	}
	return nil
}

// DefaultSettings returns settings using the mock function or query defaults.
func (m *Mock) DefaultSettings() query.Settings {
	if m.DefaultSettingsFunc != nil {
		return m.DefaultSettingsFunc()
	}
	return query.DefaultSettings()
}

// BaseURL returns the base URL using the mock function or a test URL.
func (m *Mock) BaseURL() string {
	if m.BaseURLFunc != nil {
		return m.BaseURLFunc()
	}
	return "https://example.test/"
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// GlamourStyle returns the style using the mock function or "notty".
func (m *Mock) GlamourStyle() string {
	if m.GlamourStyleFunc != nil {
		return m.GlamourStyleFunc()
	}
	return "notty"
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns commit using the mock function or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns date using the mock function or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns builtBy using the mock function or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
