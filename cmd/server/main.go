package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/iudanet/ucenter/internal/server"
	"github.com/iudanet/ucenter/internal/server/config"
	"github.com/iudanet/ucenter/internal/server/logger"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[0], os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if cfg.ShowVersion {
		printVersion()
		return nil
	}

	log, err := logger.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := server.OpenStorage(ctx, cfg.Storage, cfg.DBPath)
	if err != nil {
		return err
	}

	srv, err := server.New(cfg, log, store, Version)
	if err != nil {
		_ = store.Close()
		return err
	}
	defer func() {
		if err := srv.Close(); err != nil {
			log.Error("failed to close server", slog.Any("error", err))
		}
	}()

	log.Info("UCenter server starting",
		slog.String("version", Version),
		slog.String("storage", cfg.Storage),
		slog.String("db", cfg.DBPath))

	return srv.Run(ctx)
}

func printVersion() {
	fmt.Printf("UCenter Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
