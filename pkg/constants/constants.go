// Package constants provides shared constants used throughout the ainything codebase.
// This includes timeouts, limits, file permissions, and default values
// that should be consistent across the CLI, TUI and HTTP server.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for fetching a remote catalog
	DefaultHTTPTimeout = 30 * time.Second

	// DefaultLoadTimeout bounds a single catalog or content load
	DefaultLoadTimeout = 15 * time.Second

	// ShutdownTimeout is the grace period for draining the HTTP server
	ShutdownTimeout = 30 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Limit constants define various limits and capacities
const (
	// MaxCatalogModels is the maximum number of models accepted from a loader
	MaxCatalogModels = 10000

	// MaxModelNameLength is the maximum allowed length for model names
	MaxModelNameLength = 256

	// MaxCatalogBytes caps the size of a remote catalog document (8 MB)
	MaxCatalogBytes = 8 << 20

	// MaxSessionMessageBytes caps a single WebSocket session frame
	MaxSessionMessageBytes = 8 << 10
)

// Cache constants
const (
	// CacheTTL is the default time-to-live for cached query results
	CacheTTL = 5 * time.Minute

	// CacheCleanupInterval is how often to clean expired cache entries
	CacheCleanupInterval = 10 * time.Minute
)

// Logging constants
const (
	// LogRotationSizeMB is the maximum size of a log file before rotation
	LogRotationSizeMB = 10

	// LogRotationAgeDays is the maximum age of rotated log files
	LogRotationAgeDays = 7

	// LogRotationBackups is the maximum number of old log files to retain
	LogRotationBackups = 5
)

// Default values
const (
	// DefaultAboutDocument is the identifier of the About page document
	DefaultAboutDocument = "about"

	// DefaultBaseURL is the site used when building shareable links
	DefaultBaseURL = "https://ainything.ai/"

	// DefaultGlamourStyle is the glamour style used for terminal markdown
	DefaultGlamourStyle = "dark"
)

// Path constants
const (
	// DefaultConfigName is the config file name searched in $HOME and the working directory
	DefaultConfigName = ".ainything"

	// DefaultLogsPath is the default path for log files written by the TUI
	DefaultLogsPath = "~/.ainything/logs/ainything.log"
)
