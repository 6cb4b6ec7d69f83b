// Package serve provides the serve command, which runs the HTTP and
// WebSocket browsing API.
package serve

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/agentstation/ainything/cmd/application"
	"github.com/agentstation/ainything/internal/cmd/cmdutil"
	"github.com/agentstation/ainything/internal/cmd/emoji"
	"github.com/agentstation/ainything/internal/server"
	"github.com/agentstation/ainything/pkg/constants"
)

// NewCommand creates the serve command.
func NewCommand(app application.Application) *cobra.Command {
	defaults := server.DefaultConfig()

	cmd := &cobra.Command{
		Use:     "serve",
		GroupID: cmdutil.GroupInteractive,
		Short:   "Serve the catalog browser over HTTP and WebSocket",
		Long: `Serve starts the REST and WebSocket API for the catalog browser.

Endpoints:
  GET /health, /api/v1/health, /api/v1/ready
  GET /api/v1/models       search, filter and sort (query parameters)
  GET /api/v1/models/{name}
  GET /api/v1/facets
  GET /api/v1/about
  GET /api/v1/resolve      snapshot for a URL fragment
  GET /api/v1/session/ws   interactive session, one per connection
  GET /api/v1/openapi.json, /api/v1/openapi.yaml

Results are cached in memory, requests are rate limited per client IP,
and the server drains connections on SIGINT or SIGTERM.`,
		Example: `  ainything serve
  ainything serve --port 3000 --cors
  ainything serve --cors-origins "https://example.com" --rate-limit 60`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, app)
		},
	}

	cmd.Flags().IntP("port", "p", defaults.Port, "Server port")
	cmd.Flags().String("host", defaults.Host, "Bind address")
	cmd.Flags().Bool("cors", false, "Enable CORS for all origins")
	cmd.Flags().StringSlice("cors-origins", []string{}, "Allowed CORS origins (comma-separated)")
	cmd.Flags().Int("rate-limit", defaults.RateLimit, "Requests per minute per IP (0 to disable)")
	cmd.Flags().Duration("cache-ttl", defaults.CacheTTL, "Result cache TTL")
	cmd.Flags().Duration("read-timeout", defaults.ReadTimeout, "HTTP read timeout")
	cmd.Flags().Duration("write-timeout", defaults.WriteTimeout, "HTTP write timeout")
	cmd.Flags().Duration("idle-timeout", defaults.IdleTimeout, "HTTP idle timeout")
	cmd.Flags().String("prefix", defaults.PathPrefix, "API path prefix")

	return cmd
}

// configFromFlags builds the server configuration from parsed flags.
func configFromFlags(cmd *cobra.Command) server.Config {
	origins := mustGetStringSlice(cmd, "cors-origins")
	return server.Config{
		Host:         mustGetString(cmd, "host"),
		Port:         mustGetInt(cmd, "port"),
		PathPrefix:   mustGetString(cmd, "prefix"),
		CORSEnabled:  mustGetBool(cmd, "cors") || len(origins) > 0,
		CORSOrigins:  origins,
		RateLimit:    mustGetInt(cmd, "rate-limit"),
		CacheTTL:     mustGetDuration(cmd, "cache-ttl"),
		ReadTimeout:  mustGetDuration(cmd, "read-timeout"),
		WriteTimeout: mustGetDuration(cmd, "write-timeout"),
		IdleTimeout:  mustGetDuration(cmd, "idle-timeout"),
	}
}

func run(cmd *cobra.Command, app application.Application) error {
	cfg := configFromFlags(cmd)
	logger := app.Logger()

	srv, err := server.New(app, cfg)
	if err != nil {
		return err
	}

	logger.Info().
		Str("addr", cfg.Addr()).
		Str("prefix", cfg.PathPrefix).
		Bool("cors", cfg.CORSEnabled).
		Int("rate_limit", cfg.RateLimit).
		Dur("cache_ttl", cfg.CacheTTL).
		Msg("Starting API server")

	// Load the catalog up front so /ready reflects it immediately. A failure
	// is not fatal: the catalog is retried on the next request.
	if _, err := app.Catalog(cmd.Context()); err != nil {
		logger.Warn().Err(err).Msg("Catalog not available at startup")
	}

	listener, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listening on %s: %w", cfg.Addr(), err)
	}

	httpServer := &http.Server{
		Handler:      srv.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return serveWithGracefulShutdown(cmd.Context(), httpServer, srv, listener, cmd.OutOrStdout(), logger)
}

// serveWithGracefulShutdown serves until ctx is cancelled, then drains the
// HTTP server and closes WebSocket sessions.
func serveWithGracefulShutdown(ctx context.Context, httpServer *http.Server, srv *server.Server, listener net.Listener, out io.Writer, logger *zerolog.Logger) error {
	srv.Start()

	serverErr := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", listener.Addr().String()).Msg("Server starting")
		if err := httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			serverErr <- fmt.Errorf("server failed: %w", err)
		}
	}()

	fmt.Fprintf(out, "%s Serving ainything on http://%s\n", emoji.Start, listener.Addr())
	fmt.Fprintln(out, "  Press Ctrl+C to stop")

	select {
	case err := <-serverErr:
		shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return err
	case <-ctx.Done():
		logger.Info().Msg("Shutdown signal received")
		fmt.Fprintf(out, "\n%s Shutting down...\n", emoji.Stop)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	// Sessions are hijacked connections that http.Server.Shutdown does not track
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Session shutdown failed")
	}
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info().Msg("Server stopped gracefully")
	fmt.Fprintf(out, "%s Server stopped\n", emoji.Success)
	return nil
}

// The mustGet* helpers read flags defined by NewCommand; an error means a
// programming error.

func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetInt(cmd *cobra.Command, name string) int {
	val, err := cmd.Flags().GetInt(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetStringSlice(cmd *cobra.Command, name string) []string {
	val, err := cmd.Flags().GetStringSlice(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

func mustGetDuration(cmd *cobra.Command, name string) time.Duration {
	val, err := cmd.Flags().GetDuration(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
