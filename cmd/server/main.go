// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/galleria/internal/api"
	"github.com/tomtom215/galleria/internal/cache"
	"github.com/tomtom215/galleria/internal/config"
	"github.com/tomtom215/galleria/internal/database"
	"github.com/tomtom215/galleria/internal/logging"
	"github.com/tomtom215/galleria/internal/supervisor"
	"github.com/tomtom215/galleria/internal/supervisor/services"
	"github.com/tomtom215/galleria/internal/tour"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		logging.Error().Err(err).Msg("Galleria exited with error")
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("db_path", cfg.Database.Path).
		Msg("Starting Galleria with supervisor tree")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.New(&cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing database")
		}
	}()
	logging.Info().Msg("Database initialized successfully")

	if cfg.Database.SeedFile != "" {
		if err := db.ImportFile(ctx, cfg.Database.SeedFile); err != nil {
			return err
		}
		logging.Info().Str("file", cfg.Database.SeedFile).Msg("Seed dataset imported")
	}

	store := database.NewBreakerStore(db, cfg.Breaker)
	graphs := cache.NewGraphCache(cfg.Cache.MaxGraphs, cfg.Cache.GraphTTL)

	engine, err := tour.NewEngine(&cfg.Tour, tour.Sources{
		Geometry: store,
		Artworks: store,
		Catalog:  store,
	}, graphs, logging.WithComponent("tour"))
	if err != nil {
		return err
	}

	handler := api.NewHandler(engine, db, store, version)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router.SetupChi(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = cfg.Server.ShutdownTimeout * 2
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger("supervisor"), treeCfg)
	if err != nil {
		return err
	}

	if cfg.Warm.Enabled {
		buildings := cfg.Warm.Buildings
		if len(buildings) == 0 {
			// Warm everything the store holds.
			if buildings, err = db.Buildings(ctx); err != nil {
				return err
			}
		}
		tree.AddDataService(services.NewGraphWarmService(engine, graphs, buildings, cfg.Warm.Interval))
		logging.Info().
			Strs("buildings", buildings).
			Dur("interval", cfg.Warm.Interval).
			Msg("Graph warm-up service added")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))
	logging.Info().Str("addr", server.Addr).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop")
	}

	logging.Info().Msg("Application stopped gracefully")
	return nil
}
