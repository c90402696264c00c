package app

import (
	"context"
	"io"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"taskmaster/internal/server/config"
	"taskmaster/internal/server/httpapi"
	"taskmaster/internal/server/service"
	"taskmaster/internal/server/store"
)

type App struct {
	version   string
	buildDate string
	logger    *log.Logger
	server    *http.Server
	gateway   io.Closer
}

// New wires config, store gateway, key broker and router. A store that
// cannot be reached does not abort startup; the service comes up in the
// disconnected state and reports it on /connection.
func New(version, buildDate string, logger *log.Logger) *App {
	cfg := config.Load()
	gateway := store.New(cfg.StoreDSN, logger)
	broker := service.NewKeyBroker(gateway, cfg, logger)

	apiKey := broker.ServerKey(context.Background())
	if apiKey == "" {
		logger.Printf("no usable api key at startup; protected routes will refuse all requests")
	}

	router := httpapi.NewRouter(gateway, broker, cfg, apiKey, logger)
	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return &App{version: version, buildDate: buildDate, logger: logger, server: server, gateway: gateway}
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	defer func() { _ = a.gateway.Close() }()

	go func() {
		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Printf("http server error: %v", err)
		}
	}()

	a.logger.Printf("taskmaster server %s (%s) listening on %s", a.version, a.buildDate, a.server.Addr)

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return a.server.Shutdown(shutdownCtx)
}
