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
	"github.com/iudanet/ucenter/internal/server/seed"
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
	cfg, err := config.LoadSeed(os.Args[0], os.Args[1:], os.Stderr)
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

	// Логи в stderr, в stdout только итоговые токены
	log, err := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	seeds, err := seed.Load(cfg.File)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := server.OpenStorage(ctx, cfg.Storage, cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close storage", slog.Any("error", err))
		}
	}()

	accounts, err := seed.New(log, store).Apply(ctx, seeds)
	if err != nil {
		return err
	}

	for _, account := range accounts {
		fmt.Printf("%s\t%s\t%s\n", account.ID, account.Name, account.Token)
	}

	log.Info("seeding completed", slog.Int("accounts", len(accounts)))
	return nil
}

func printVersion() {
	fmt.Printf("UCenter Seed\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
