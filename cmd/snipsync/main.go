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
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/snipsync/snipsync/internal/cli"
	"github.com/snipsync/snipsync/internal/config"
	"github.com/snipsync/snipsync/internal/iocli"
	"github.com/snipsync/snipsync/internal/models"
	"github.com/snipsync/snipsync/internal/records"
	"github.com/snipsync/snipsync/internal/remote"
	"github.com/snipsync/snipsync/internal/scheduler"
	"github.com/snipsync/snipsync/internal/stats"
	"github.com/snipsync/snipsync/internal/storage"
	"github.com/snipsync/snipsync/internal/storage/boltdb"
	"github.com/snipsync/snipsync/internal/sync"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	dbPath := flag.String("db", "", "Path to local database (default ~/.snipsync/snipsync.db)")
	configPath := flag.String("config", "", "Path to settings file (default ~/.snipsync/settings.json)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage()
		os.Exit(1)
	}

	if err := run(args[0], args[1:], *dbPath, *configPath, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(command string, args []string, dbPath, configPath string, verbose bool) error {
	logger := newLogger(command, verbose)

	var err error
	if dbPath == "" {
		if dbPath, err = config.DefaultDBPath(); err != nil {
			return err
		}
	}
	if configPath == "" {
		if configPath, err = config.DefaultSettingsPath(); err != nil {
			return err
		}
	}

	settings, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := boltdb.New(ctx, dbPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	io := iocli.NewStdio()

	switch command {
	case "login":
		return cli.RunLogin(ctx, io, store, settings.ServerURL)
	case "logout":
		return cli.RunLogout(ctx, io, store)
	case "status":
		recorder, err := stats.NewRecorder(ctx, store, nil, logger)
		if err != nil {
			return fmt.Errorf("failed to load statistics: %w", err)
		}
		tracker := sync.NewTracker(store, store, logger)
		return cli.RunStatus(ctx, io, store, tracker, recorder)
	case "add":
		return cli.RunAdd(ctx, io, args, records.NewService(store, nil, logger))
	case "list":
		return cli.RunList(ctx, io, args, records.NewService(store, nil, logger))
	case "get":
		return cli.RunGet(ctx, io, args, records.NewService(store, nil, logger))
	case "delete":
		return cli.RunDelete(ctx, io, args, records.NewService(store, nil, logger))
	case "conflicts":
		return cli.RunConflicts(ctx, io, args, store, store, logger)
	case "sync":
		if !settings.Enabled {
			return fmt.Errorf("sync is disabled in settings")
		}
		engine, err := buildEngine(ctx, store, settings, nil, logger)
		if err != nil {
			return err
		}
		return cli.RunSync(ctx, io, engine)
	case "daemon":
		if !settings.Enabled {
			return fmt.Errorf("sync is disabled in settings")
		}
		registry := prometheus.NewRegistry()
		var metrics *stats.Metrics
		if settings.MetricsAddr != "" {
			metrics = stats.NewMetrics(registry)
		}
		engine, err := buildEngine(ctx, store, settings, metrics, logger)
		if err != nil {
			return err
		}
		sched := scheduler.New(engine, settings, logger)
		if settings.InboxDir != "" {
			svc := records.NewService(store, sched, logger)
			watcher, err := records.NewWatcher(settings.InboxDir, svc, logger)
			if err != nil {
				return err
			}
			go func() {
				if err := watcher.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
					logger.Error("inbox watcher stopped", "error", err)
				}
			}()
		}
		return cli.RunDaemon(ctx, io, sched, engine, registry, settings.MetricsAddr, logger)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		cli.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

// buildEngine assembles the sync engine around the stored credentials.
func buildEngine(ctx context.Context, store *boltdb.Storage, settings models.SyncSettings, metrics *stats.Metrics, logger *slog.Logger) (sync.Service, error) {
	authData, err := store.GetAuth(ctx)
	if errors.Is(err, storage.ErrAuthNotFound) {
		return nil, fmt.Errorf("not logged in; run 'snipsync login' first")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read auth data: %w", err)
	}
	if authData.ExpiresAt > 0 && time.Now().After(time.Unix(authData.ExpiresAt, 0)) {
		return nil, fmt.Errorf("access token expired; run 'snipsync login' again")
	}

	recorder, err := stats.NewRecorder(ctx, store, metrics, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load statistics: %w", err)
	}

	client := remote.NewClient(settings.ServerURL, authData.AccessToken)

	return sync.NewService(sync.Config{
		Remote:    client,
		Records:   store,
		Meta:      store,
		Conflicts: store,
		Stats:     recorder,
		Logger:    logger,
		Settings:  settings,
	})
}

// newLogger builds the process logger: quiet for one-shot commands, Info for
// the daemon, Debug with -verbose.
func newLogger(command string, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if command == "daemon" {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func printVersion() {
	fmt.Printf("snipsync\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
