package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"pet-hotel-registry/internal/config"
	"pet-hotel-registry/internal/domain/pets"
	"pet-hotel-registry/internal/platform/logger"
	"pet-hotel-registry/internal/platform/tracing"
	"pet-hotel-registry/internal/router"
)

type serveFlags struct {
	port     string
	logLevel string
}

func (f *serveFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.port, "port", "", "HTTP port (overrides PORT)")
	cmd.Flags().StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides LOG_LEVEL)")
}

func serveCmd() *cobra.Command {
	var flags serveFlags
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), flags)
		},
	}
	flags.bind(cmd)
	return cmd
}

func serve(parent context.Context, flags serveFlags) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()
	if flags.port != "" {
		cfg.Port = flags.port
	}
	if flags.logLevel != "" {
		cfg.LogLevel = flags.logLevel
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})

	shutdownTracing, err := tracing.Init(ctx, tracing.Options{
		Endpoint:       cfg.OTLPEndpoint,
		ServiceName:    cfg.AppName,
		ServiceVersion: Version,
	})
	if err != nil {
		log.Warn("tracing disabled", map[string]any{"error": err.Error()})
		shutdownTracing = func(context.Context) error { return nil }
	}

	seed, err := pets.LoadSeedFile(cfg.SeedFile)
	if err != nil {
		return err
	}

	h, err := router.NewRouter(ctx, router.Options{
		Logger:        log,
		DSN:           cfg.DBDSN,
		Seed:          seed,
		RedirectDelay: cfg.RedirectDelay,
		SessionTTL:    cfg.SessionTTL,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if sl, ok := log.(*logger.SlogLogger); ok {
		srv.ErrorLog = slog.NewLogLogger(sl.Slog().Handler(), slog.LevelError)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr, "tracing": cfg.TracingEnabled()})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown", map[string]any{"error": err.Error()})
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		log.Error("tracing shutdown", map[string]any{"error": err.Error()})
	}
	return nil
}
