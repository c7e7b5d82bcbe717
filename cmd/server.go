package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bistro-boss/internal/wire"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

type serveOpts struct {
	port string
}

var serveFlags serveOpts

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context(), serveFlags)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.port, "port", "", "listen port (overrides PORT)")
}

func runServe(ctx context.Context, opts serveOpts) error {
	if ctx == nil {
		ctx = context.Background()
	}

	rt, err := loadRuntime()
	if err != nil {
		return err
	}
	defer rt.close()

	logger := rt.logger
	if opts.port != "" {
		rt.config.App.Port = opts.port
	}

	logger.Info("Starting application",
		zap.String("app", rt.config.App.Name),
		zap.String("port", rt.config.App.Port),
		zap.Bool("debug", rt.config.App.Debug),
		zap.Bool("strict_writes", rt.config.Auth.StrictWrites),
	)

	issuer, err := rt.issuer()
	if err != nil {
		logger.Error("Invalid token configuration", zap.Error(err))
		return err
	}

	if err := rt.openStore(); err != nil {
		logger.Error("Failed to open store", zap.Error(err))
		return err
	}
	if err := rt.ensureIndexes(ctx); err != nil {
		logger.Error("Failed to ensure indexes", zap.Error(err))
		return err
	}

	app := wire.Wiring(rt.repo, issuer, rt.config, logger)

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return APIServer(ctx, app.Router, rt.config.App.Port, logger)
}

// APIServer serves handler on port until ctx is cancelled, then drains
// in-flight requests.
func APIServer(ctx context.Context, handler http.Handler, port string, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info("Server stopped")
	return nil
}
