package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	root, err := NewCompositionRoot()
	if err != nil {
		fmt.Printf("Failed to initialize application: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if err := root.Cleanup(); err != nil {
			root.Logger.Error("Failed to cleanup resources", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	listenAddr := root.ListenAddr()
	g.Go(func() error {
		return root.HTTPServer.Start(listenAddr)
	})
	g.Go(func() error {
		return root.MetricsServer.Start()
	})

	// Stop both servers on a signal or when either of them fails
	g.Go(func() error {
		<-gctx.Done()
		root.Logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), root.Config.Server.ShutdownTimeout)
		defer cancel()

		if err := root.HTTPServer.Stop(shutdownCtx); err != nil {
			root.Logger.Error("HTTP server forced to shutdown", zap.Error(err))
		}
		if err := root.MetricsServer.Stop(shutdownCtx); err != nil {
			root.Logger.Error("Metrics server forced to shutdown", zap.Error(err))
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		root.Logger.Error("Server failed", zap.Error(err))
	}

	root.Logger.Info("Server exited")
}
