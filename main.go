// Finnish Business ID MCP Server - A Model Context Protocol server for Y-tunnus validation
// Checks Finnish Business IDs offline and reports every reason an ID is invalid
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/olgasafonova/ytunnus-mcp-server/internal/config"
	"github.com/olgasafonova/ytunnus-mcp-server/internal/finland"
	"github.com/olgasafonova/ytunnus-mcp-server/tools"
	"github.com/olgasafonova/ytunnus-mcp-server/tracing"
)

// recoverPanic logs a recovered panic instead of crashing the process
func recoverPanic(logger *slog.Logger, operation string) {
	if r := recover(); r != nil {
		logger.Error("Panic recovered",
			"operation", operation,
			"panic", r,
			"stack", string(debug.Stack()))
	}
}

const (
	ServerName    = "ytunnus-mcp-server"
	ServerVersion = "1.0.0"

	shutdownTimeout   = 5 * time.Second
	readHeaderTimeout = 10 * time.Second
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Configure logging to stderr (stdout is used for MCP protocol)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("Server error", "error", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	traceConfig := tracing.DefaultConfig()
	traceConfig.ServiceVersion = ServerVersion
	shutdownTracing, err := tracing.Setup(ctx, traceConfig)
	if err != nil {
		return fmt.Errorf("setting up tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("Tracing shutdown failed", "error", err)
		}
	}()

	server := newServer(logger)

	logger.Info("Starting Finnish Business ID MCP Server",
		"name", ServerName,
		"version", ServerVersion,
		"http_addr", cfg.HTTPAddr,
		"tracing", traceConfig.Enabled,
	)

	if cfg.HTTPAddr == "" {
		return runStdio(ctx, server, cfg, logger)
	}
	return runHTTP(ctx, server, cfg, logger)
}

// newServer creates the MCP server with every tool registered.
func newServer(logger *slog.Logger) *mcp.Server {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: ServerVersion,
	}, &mcp.ServerOptions{
		Logger: logger,
		Instructions: `Finnish Business ID MCP Server checks Finnish Business IDs (Y-tunnus) offline.

Available tools:
- finland_validate_business_id: Validate a Business ID of the form NNNNNNN-C and list every reason it is invalid
- finland_run_self_test: Run the built-in test cases against the validator

A Business ID is seven digits, a hyphen and a check digit, e.g. 2471384-9.
No registry lookups are made; a valid result means well-formed, not registered.

Configure via environment variables:
- BUSINESSID_HTTP_ADDR: Serve streamable HTTP on this address instead of stdio
- BUSINESSID_METRICS_ADDR: Serve Prometheus metrics on this address in stdio mode
- BUSINESSID_RATE_LIMIT: Requests per minute per client IP in HTTP mode (0 disables)`,
	})

	tools.NewHandlerRegistry(finland.New(), logger).RegisterAll(server)
	return server
}

// runStdio serves MCP on stdin/stdout, with an optional metrics listener.
func runStdio(ctx context.Context, server *mcp.Server, cfg config.Config, logger *slog.Logger) error {
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		mux.HandleFunc("/healthz", healthz)

		metricsServer := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           mux,
			ReadHeaderTimeout: readHeaderTimeout,
		}
		go func() {
			defer recoverPanic(logger, "metrics server")
			if err := serve(ctx, metricsServer, logger); err != nil {
				logger.Error("Metrics server failed", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	err := server.Run(ctx, &mcp.StdioTransport{})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio transport: %w", err)
	}
	return nil
}

// runHTTP serves MCP over streamable HTTP together with /metrics and /healthz.
func runHTTP(ctx context.Context, server *mcp.Server, cfg config.Config, logger *slog.Logger) error {
	handler, secured := newMux(server, cfg, logger)
	defer secured.Close()

	httpServer := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}
	return serve(ctx, httpServer, logger)
}

// newMux routes /mcp through the security middleware. The caller closes the
// returned middleware.
func newMux(server *mcp.Server, cfg config.Config, logger *slog.Logger) (*http.ServeMux, *SecurityMiddleware) {
	mcpHandler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return server
	}, nil)

	secured := NewSecurityMiddleware(mcpHandler, logger, SecurityConfig{
		RateLimit:   cfg.RateLimit,
		MaxBodySize: cfg.MaxBodyBytes,
	})

	mux := http.NewServeMux()
	mux.Handle("/mcp", secured)
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", healthz)
	return mux, secured
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func serve(ctx context.Context, srv *http.Server, logger *slog.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("listening on %s: %w", srv.Addr, err)
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server", "addr", srv.Addr)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down %s: %w", srv.Addr, err)
	}
	return nil
}

type healthStatus struct {
	Status  string `json:"status"`
	Name    string `json:"name"`
	Version string `json:"version"`
}

func healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthStatus{
		Status:  "ok",
		Name:    ServerName,
		Version: ServerVersion,
	})
}
