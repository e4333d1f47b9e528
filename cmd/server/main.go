// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

// Command server runs the inventory insights HTTP service.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jomermandap/softeng-ims/internal/api"
	"github.com/jomermandap/softeng-ims/internal/config"
	"github.com/jomermandap/softeng-ims/internal/logging"
	"github.com/jomermandap/softeng-ims/internal/recommend"
	"github.com/jomermandap/softeng-ims/internal/store"
	"github.com/jomermandap/softeng-ims/internal/supervisor"
	"github.com/jomermandap/softeng-ims/internal/supervisor/services"
)

func main() {
	if err := run(); err != nil {
		logging.Fatal().Err(err).Msg("server exited with error")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})
	logging.Info().
		Str("addr", fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)).
		Str("store", cfg.Store.Path).
		Msg("starting inventory insights service")

	db, err := store.NewPebbleStore(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Err(err).Msg("failed to close store")
		}
	}()

	engine := recommend.NewEngine(db, recommend.Config{
		Forecast: recommend.ForecastConfig{
			Trees:        cfg.Recommend.Trees,
			Seed:         cfg.Recommend.Seed,
			TestFraction: cfg.Recommend.TestFraction,
		},
		Bundles: recommend.BundleConfig{
			MinSupport:    cfg.Recommend.MinSupport,
			MinConfidence: cfg.Recommend.MinConfidence,
			Discount:      cfg.Recommend.BundleDiscount,
		},
		DefaultDemandScore: cfg.Recommend.DefaultDemandScore,
	})

	mw := api.NewMiddleware(&api.MiddlewareConfig{
		CORSAllowedOrigins: cfg.Security.CORSOrigins,
		CORSAllowedMethods: []string{"GET", "OPTIONS"},
		CORSAllowedHeaders: []string{"Content-Type"},
		CORSMaxAge:         86400,
		RateLimitRequests:  cfg.Security.RateLimitRequests,
		RateLimitWindow:    cfg.Security.RateLimitWindow,
		RateLimitDisabled:  cfg.Security.RateLimitDisabled,
	})
	router := api.NewRouter(api.NewHandler(engine, db), mw)

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	tree := supervisor.NewTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	treeErr := tree.ServeBackground(ctx)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("shutdown signal received")
		cancel()
		if err := <-treeErr; err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("supervisor shutdown: %w", err)
		}
	case err := <-treeErr:
		if err != nil {
			return fmt.Errorf("supervisor: %w", err)
		}
	}

	if unstopped, err := tree.UnstoppedServiceReport(); err == nil && len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("service did not stop in time")
		}
	}

	logging.Info().Msg("server stopped")
	return nil
}
