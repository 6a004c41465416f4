package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/cosmic-rhythm/internal/infra/config"
)

// App encapsulates the HTTP server lifecycle.
type App struct {
	cfg     *config.Config
	logger  *slog.Logger
	server  *http.Server
	engines *Engines
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, engines *Engines) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, engines: engines}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	defer a.release()
	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address, "timezone", a.cfg.App.Timezone)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		return a.server.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (a *App) release() {
	if a.engines == nil {
		return
	}
	if usage := a.engines.CacheUsage.Snapshot(); !usage.IsZero() {
		a.logger.Info("maya reading cache usage",
			"hits", usage.Hits,
			"misses", usage.Misses,
			"errors", usage.Errors,
			"hit_ratio", usage.HitRatio(),
		)
	}
	a.engines.Close()
}
