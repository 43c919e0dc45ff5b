// Package stubendpoint is a local stand-in for the attachment endpoint. It
// accepts the upload form, stores the decoded file and answers "ok" or an
// "error: ..." body. Origins outside the allow-list get no CORS grant, so the
// uploader sees an opaque response exactly as it would in production.
package stubendpoint

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/dmitrijs2005/eieluploader/internal/logging"
	"github.com/dmitrijs2005/eieluploader/internal/stubendpoint/config"
)

type App struct {
	config *config.Config
	logger logging.Logger
	server *http.Server
}

// NewApp builds the HTTP server. dir must already exist.
func NewApp(c *config.Config, dir string, logger logging.Logger) *App {
	h := NewHandler(dir, c.MaxBodyBytes, logger)

	return &App{
		config: c,
		logger: logger,
		server: &http.Server{
			Addr:              c.Addr,
			Handler:           NewRouter(h, c.AllowOrigins),
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", app.config.Addr, err)
	}
	return app.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	app.logger.Info(ctx, "Starting stub endpoint...", "addr", ln.Addr().String(), "origins", app.config.AllowOrigins)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), app.config.ShutdownTimeout)
	defer cancel()

	app.logger.Info(ctx, "Stopping stub endpoint...")
	if err := app.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
