package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/yanqian/faq-chatbot/internal/domain/faq"
	"github.com/yanqian/faq-chatbot/internal/infra/config"
)

// App encapsulates the HTTP server lifecycle and the corpus refresher.
type App struct {
	cfg    *config.Config
	logger *slog.Logger
	server *http.Server
	store  *faq.Store
}

// NewApp is used by Wire to build the runnable app.
func NewApp(cfg *config.Config, logger *slog.Logger, server *http.Server, store *faq.Store) *App {
	return &App{cfg: cfg, logger: logger.With("component", "bootstrap"), server: server, store: store}
}

// Run loads the corpus, starts the HTTP server and blocks until shutdown.
func (a *App) Run(ctx context.Context) error {
	// A failed initial load is not fatal: requests are refused with a
	// data-unavailable error until a reload succeeds.
	if err := a.store.Reload(ctx); err != nil {
		a.logger.Error("initial corpus load failed", "error", err)
	}

	if interval := a.cfg.Corpus.ReloadInterval; interval > 0 {
		go a.refreshLoop(ctx, interval)
	}

	errCh := make(chan error, 1)

	go func() {
		a.logger.Info("http server starting", "address", a.cfg.HTTP.Address)
		if err := a.server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		a.logger.Info("shutdown signal received")
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// refreshLoop periodically republishes the corpus snapshot. A failed
// reload keeps the previous snapshot serving.
func (a *App) refreshLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := a.store.Reload(ctx); err != nil {
				a.logger.Error("corpus reload failed", "error", err)
			}
		}
	}
}
