// Package bootstrap runs an HTTP server until the process is signalled.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultShutdownTimeout bounds graceful shutdown.
const DefaultShutdownTimeout = 10 * time.Second

// ServerApp is one named HTTP server plus the cleanups to run after it stops.
type ServerApp struct {
	Name            string
	Logger          *slog.Logger
	Server          *http.Server
	ShutdownTimeout time.Duration

	cleanups    []func(context.Context) error
	cleanupOnce sync.Once
	cleanupErr  error
}

// NewServerApp creates a ServerApp for handler listening on addr.
func NewServerApp(name, addr string, handler http.Handler, logger *slog.Logger) *ServerApp {
	return &ServerApp{
		Name:   name,
		Logger: logger,
		Server: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// OnShutdown registers fn to run after the server has stopped, in
// registration order.
func (a *ServerApp) OnShutdown(fn func(context.Context) error) *ServerApp {
	a.cleanups = append(a.cleanups, fn)
	return a
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (a *ServerApp) Run(ctx context.Context) error {
	signalCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(signalCtx)

	a.Logger.Info("server_start",
		slog.String("name", a.Name),
		slog.String("addr", a.Server.Addr),
	)

	g.Go(func() error {
		if err := a.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		a.Logger.Info("shutdown_signal_received", slog.String("name", a.Name))

		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.ShutdownTimeout)
		defer cancel()

		var errs []error
		if err := a.Server.Shutdown(shutdownCtx); err != nil {
			a.Logger.Error("server_shutdown_failed", slog.Any("error", err))
			errs = append(errs, fmt.Errorf("server shutdown failed: %w", err))
		}
		if err := a.runCleanups(shutdownCtx); err != nil {
			errs = append(errs, err)
		}

		a.Logger.Info("server_stopped", slog.String("name", a.Name))
		return errors.Join(errs...)
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("run %s: %w", a.Name, err)
	}
	return nil
}

// Close runs the registered cleanups without serving. It covers startup
// failures before Run; once Run or Close has run the cleanups it is a no-op.
func (a *ServerApp) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), a.ShutdownTimeout)
	defer cancel()
	return a.runCleanups(ctx)
}

func (a *ServerApp) runCleanups(ctx context.Context) error {
	a.cleanupOnce.Do(func() {
		var errs []error
		for _, fn := range a.cleanups {
			if err := fn(ctx); err != nil {
				a.Logger.Error("cleanup_failed", slog.String("name", a.Name), slog.Any("error", err))
				errs = append(errs, err)
			}
		}
		a.cleanupErr = errors.Join(errs...)
	})
	return a.cleanupErr
}
