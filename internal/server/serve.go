package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/iwvelando/loan-estimator/internal/config"
	"go.uber.org/zap"
)

// Serve listens on cfg.Address and serves the estimate API until ctx is
// cancelled, then shuts down gracefully within cfg.ShutdownTimeout.
func Serve(ctx context.Context, logger *zap.Logger, cfg config.ServerConfig, version string) error {
	ln, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.Address, err)
	}
	return ServeListener(ctx, logger, ln, cfg, version)
}

// ServeListener is Serve on an existing listener. The listener is closed
// when ServeListener returns.
func ServeListener(ctx context.Context, logger *zap.Logger, ln net.Listener, cfg config.ServerConfig, version string) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	srv := &http.Server{
		Handler:      NewHandler(logger, cfg.MaxBodySizeBytes(), version),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			zap.String("op", "server.Serve"),
			zap.String("address", ln.Addr().String()),
			zap.String("version", version),
		)
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
		logger.Info("shutting down server",
			zap.String("op", "server.Serve"),
		)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("error during server shutdown: %w", err)
	}

	logger.Info("server exited",
		zap.String("op", "server.Serve"),
	)
	return nil
}
