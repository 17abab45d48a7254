// Package main is the entry point for deepfloor.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/samdwyer/deepfloor/internal/game"
	"github.com/samdwyer/deepfloor/internal/telemetry"
)

const defaultConfigPath = "config/deepfloor.yaml"

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		fmt.Fprintln(os.Stderr, "deepfloor:", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file for local development. Not fatal: the environment
	// may already be set.
	envErr := godotenv.Load()

	cfgPath := defaultConfigPath
	if p := os.Getenv("DEEPFLOOR_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := game.LoadConfig(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()

	if envErr != nil && !errors.Is(envErr, os.ErrNotExist) {
		slog.Warn(".env file not loaded", "err", envErr)
	}
	slog.Info("config loaded", "path", cfgPath, "seed", cfg.Seed, "rooms", cfg.Dungeon.Rooms, "wall_probe", cfg.Dungeon.WallProbe)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx, cfg.Telemetry)
	if err != nil {
		// Continue without telemetry - game still works
		slog.Warn("telemetry setup failed, running without tracing", "err", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Error("telemetry shutdown", "err", err)
			}
		}()
	}

	g, err := game.New(cfg)
	if err != nil {
		return fmt.Errorf("initializing game: %w", err)
	}

	// The game loop owns the terminal; the second goroutine only wakes it
	// when a signal arrives.
	done := make(chan struct{})
	var eg errgroup.Group
	eg.Go(func() error {
		defer close(done)
		return g.Run(ctx)
	})
	eg.Go(func() error {
		select {
		case <-ctx.Done():
			slog.Info("shutting down", "reason", context.Cause(ctx))
			g.Stop()
		case <-done:
		}
		return nil
	})
	return eg.Wait()
}

// setupLogging installs a text slog handler writing to the configured file.
func setupLogging(cfg game.LogConfig) (func(), error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	return func() { _ = f.Close() }, nil
}
