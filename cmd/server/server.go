package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/martinsuchenak/netinv/internal/api"
	"github.com/martinsuchenak/netinv/internal/catalog"
	"github.com/martinsuchenak/netinv/internal/config"
	"github.com/martinsuchenak/netinv/internal/inventory"
	"github.com/martinsuchenak/netinv/internal/log"
	"github.com/martinsuchenak/netinv/internal/mcp"
	"github.com/martinsuchenak/netinv/internal/probe"
	"github.com/martinsuchenak/netinv/internal/storage"
	"github.com/martinsuchenak/netinv/internal/telemetry"
	"github.com/paularlott/cli"
)

const shutdownTimeout = 10 * time.Second

func Command() *cli.Command {
	return &cli.Command{
		Name:        "server",
		Usage:       "Start the inventory server",
		Description: "Start the HTTP server with API, MCP and metrics endpoints",
		Flags:       config.GetFlags(),
		Run: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := config.Load()
			if err != nil {
				log.Error("Invalid configuration", "error", err)
				return err
			}
			if err := log.Configure(cfg.LogLevel, cfg.LogFormat); err != nil {
				log.Error("Invalid logging configuration", "error", err)
				return err
			}
			log.Info("Configuration loaded", "data_dir", cfg.DataDir, "listen_addr", cfg.ListenAddr)

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			shutdownTracing, err := telemetry.SetupTracing(ctx, cfg.OTelEndpoint, "netinv")
			if err != nil {
				log.Error("Failed to initialize tracing", "error", err)
				return err
			}
			defer shutdownTracing(context.Background())
			if cfg.IsTracingEnabled() {
				log.Info("Tracing enabled", "endpoint", cfg.OTelEndpoint)
			}

			store, err := storage.Open(cfg.DataDir)
			if err != nil {
				log.Error("Failed to initialize storage", "error", err)
				return err
			}
			defer store.Close()
			log.Info("Storage initialized", "backend", "SQLite", "path", cfg.DataDir)

			inv := inventory.New(store)

			var wg sync.WaitGroup
			defer wg.Wait()

			if cfg.PlatformCatalog != "" {
				cat := catalog.New(cfg.PlatformCatalog, inv.Platforms)
				created, updated, err := cat.Load(ctx)
				if err != nil {
					log.Error("Failed to load platform catalog", "error", err, "path", cfg.PlatformCatalog)
					return err
				}
				log.Info("Platform catalog loaded", "path", cfg.PlatformCatalog, "created", created, "updated", updated)
				wg.Add(1)
				go func() {
					defer wg.Done()
					if err := cat.Watch(ctx); err != nil {
						log.Error("Platform catalog watcher stopped", "error", err)
					}
				}()
			}

			var probes api.ProbeResults
			if cfg.Probe.Enabled {
				prober, err := probe.New(inv.Elements, cfg.Probe)
				if err != nil {
					log.Error("Failed to initialize probe", "error", err)
					return err
				}
				probes = prober
				wg.Add(1)
				go func() {
					defer wg.Done()
					prober.Run(ctx)
				}()
			}

			apiHandler := api.NewHandler(inv, probes)
			mcpServer := mcp.NewServer(inv, cfg.MCPAuthToken)
			metrics := telemetry.NewMetrics()

			mux := http.NewServeMux()
			apiHandler.RegisterRoutes(mux)
			mux.HandleFunc("/mcp", mcpServer.GetHTTPHandler())
			mux.Handle("GET /metrics", metrics.Handler())

			var handler http.Handler = mux
			if cfg.IsAPIAuthEnabled() {
				handler = api.AuthMiddleware(cfg.APIAuthToken, handler)
			}
			handler = api.SecurityHeadersMiddleware(handler)
			handler = metrics.Middleware(handler)

			server := &http.Server{
				Addr:              cfg.ListenAddr,
				Handler:           handler,
				ReadHeaderTimeout: 10 * time.Second,
			}

			go func() {
				<-ctx.Done()
				log.Info("Shutting down server...")
				sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := server.Shutdown(sctx); err != nil {
					log.Warn("Graceful shutdown failed", "error", err)
					server.Close()
				}
			}()

			log.Info("Starting netinv server", "addr", cfg.ListenAddr)
			log.Info("API available", "url", "http://localhost"+cfg.ListenAddr+"/api/")
			log.Info("MCP available", "url", "http://localhost"+cfg.ListenAddr+"/mcp")
			log.Info("Metrics available", "url", "http://localhost"+cfg.ListenAddr+"/metrics")
			if cfg.IsAPIAuthEnabled() {
				log.Info("API authentication enabled")
			}
			mcpServer.LogStartup()

			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("Server error", "error", err)
				stop()
				return err
			}

			log.Info("Server stopped")
			return nil
		},
	}
}
