package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/aevon-lab/hashsplit/internal/core/config"
	"github.com/aevon-lab/hashsplit/internal/core/partition"
	"github.com/aevon-lab/hashsplit/internal/core/storage"
	"github.com/aevon-lab/hashsplit/internal/core/storage/postgres"
	"github.com/aevon-lab/hashsplit/internal/server"
	"github.com/aevon-lab/hashsplit/internal/thresholds"
	"gopkg.in/yaml.v3"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file")
	printGroups := flag.Int("print", 0, "Print the thresholds for N groups as YAML and exit")
	flag.Parse()

	if *printGroups != 0 {
		if err := printThresholds(os.Stdout, *printGroups); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		return
	}

	// 0. Initialize Logger
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.Info("Loaded config",
		"default_groups", cfg.Partition.DefaultGroups,
		"max_groups", cfg.Partition.MaxGroups,
		"cache", cfg.Partition.Cache,
		"database", cfg.Database.Enabled(),
	)

	// 2. Initialize Storage (optional PostgreSQL)
	var store storage.RangeStore
	if cfg.Database.Enabled() {
		dbAdapter, err := postgres.NewAdapter(
			cfg.Database.DSN,
			cfg.Database.MaxOpenConns,
			cfg.Database.MaxIdleConns,
		)
		if err != nil {
			slog.Error("Failed to initialize database", "error", err)
			os.Exit(1)
		}
		defer dbAdapter.Close()
		store = dbAdapter
	} else {
		slog.Info("No database configured, key scans disabled")
	}

	// 3. Initialize Threshold Service
	thresholdSvc := thresholds.NewService(store, partition.NewMemoryCache(), thresholds.Options{
		DefaultGroups:  cfg.Partition.DefaultGroups,
		MaxGroups:      cfg.Partition.MaxGroups,
		CacheByDefault: cfg.Partition.Cache,
		FoldCase:       cfg.Query.FoldCase,
		DefaultLimit:   cfg.Query.DefaultLimit,
		MaxLimit:       cfg.Query.MaxLimit,
	})

	// 4. Initialize Server
	srv := server.New(fmtAddr(cfg.Server.Host, cfg.Server.Port), healthChecker(thresholdSvc, cfg.Database.Enabled()), cfg.Server.Mode)
	thresholdSvc.RegisterRoutes(srv.Engine)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func printThresholds(w io.Writer, groups int) error {
	partitions, err := partition.Thresholds(groups)
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	defer enc.Close()
	return enc.Encode(partitions)
}

// healthChecker reports database health through the threshold service.
// Without a database /health has nothing to ping.
func healthChecker(svc *thresholds.Service, databaseEnabled bool) server.HealthChecker {
	if !databaseEnabled {
		return nil
	}
	return svc
}

func fmtAddr(host string, port int) string {
	return fmt.Sprintf("%s:%d", host, port)
}
