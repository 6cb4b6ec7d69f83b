// Package application provides the application interface for ainything commands.
//
// The Application interface defines the contract between the application layer and
// command implementations, enabling dependency injection and testability.
//
// Usage in Commands:
//
//	func NewCommand(app application.Application) *cobra.Command {
//	    return &cobra.Command{
//	        RunE: func(cmd *cobra.Command, args []string) error {
//	            catalog, err := app.Catalog(cmd.Context())
//	            if err != nil {
//	                return err
//	            }
//	            // ... use catalog
//	            return nil
//	        },
//	    }
//	}
//
// Testing with Mocks:
//
//	mock := &application.Mock{
//	    CatalogFunc: func(context.Context) (*catalogs.Catalog, error) {
//	        return testCatalog, nil
//	    },
//	}
//	cmd := NewCommand(mock)
package application

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/agentstation/ainything/pkg/catalogs"
	"github.com/agentstation/ainything/pkg/content"
	"github.com/agentstation/ainything/pkg/query"
)

// Application provides what commands and the server need.
// The App struct from cmd/ainything/app implements this interface.
//
// Thread Safety: All methods must be safe for concurrent access.
type Application interface {
	// Catalog returns the loaded catalog. The first call runs the configured
	// loader; later calls return the cached catalog.
	Catalog(ctx context.Context) (*catalogs.Catalog, error)

	// CatalogLoader returns the configured loader (embedded, file or HTTP).
	// Sessions that support retry hold the loader rather than a catalog.
	CatalogLoader() catalogs.Loader

	// Content returns the renderer for content documents such as About.
	Content() content.Renderer

	// DefaultSettings returns the filter settings a new session starts with.
	DefaultSettings() query.Settings

	// BaseURL returns the base URL used when building shareable links.
	BaseURL() string

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// GlamourStyle returns the glamour style for terminal markdown.
	GlamourStyle() string

	// OutputFormat returns the configured output format (table, json, yaml, markdown).
	OutputFormat() string

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
