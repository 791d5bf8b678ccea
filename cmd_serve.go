package main

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"what-if-engine/internal/handler"
	"what-if-engine/internal/session"
)

const shutdownTimeout = 10 * time.Second

var (
	serveHost string
	servePort int
)

// serveCmd runs the HTTP API
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scenario catalog and sessions over HTTP",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Listen host (overrides WHATIF_HOST)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	reg, err := newRegistry()
	if err != nil {
		return err
	}
	store := session.NewStore(session.NewMachine(reg))

	srv := &fasthttp.Server{
		Handler:      handler.New(store, logger).Handle,
		Name:         "what-if-engine",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return session.NewSweeper(store, cfg.Sessions.TTL, cfg.Sessions.SweepInterval, logger).Run(gctx)
	})

	g.Go(func() error {
		logger.Info("What-if engine starting",
			zap.String("addr", cfg.Server.Addr()),
			zap.String("boundary_policy", string(reg.Policy())),
		)
		if err := srv.ListenAndServe(cfg.Server.Addr()); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logger.Info("Shutting down", zap.Int("open_sessions", store.Len()))
		return srv.ShutdownWithContext(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
