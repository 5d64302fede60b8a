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

	"github.com/iudanet/ucenter/internal/client/api"
	"github.com/iudanet/ucenter/internal/client/cli"
	"github.com/iudanet/ucenter/internal/client/iocli"
	"github.com/iudanet/ucenter/internal/client/storage/boltdb"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

const defaultServerURL = "http://localhost:8080"

func main() {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	serverURL := flag.String("server", defaultServerURL, "Server URL")
	dbPath := flag.String("db", "ucenter-client.db", "Path to local profile database")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	serverSet := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "server" {
			serverSet = true
		}
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx, flag.Args(), *dbPath, *serverURL, serverSet)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, dbPath, serverURL string, serverSet bool) int {
	profiles, err := boltdb.New(ctx, dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := profiles.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Без явного -server используется сервер из сохраненного профиля
	if !serverSet {
		if profile, err := profiles.GetProfile(ctx); err == nil && profile.ServerURL != "" {
			serverURL = profile.ServerURL
		}
	}

	c := cli.New(iocli.NewStdio(), api.NewClient(serverURL), profiles, serverURL)

	if err := c.Run(ctx, args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func printVersion() {
	fmt.Printf("UCenter Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
