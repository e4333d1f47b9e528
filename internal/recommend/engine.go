// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package recommend

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jomermandap/softeng-ims/internal/logging"
	"github.com/jomermandap/softeng-ims/internal/metrics"
	"github.com/jomermandap/softeng-ims/internal/models"
)

// DataSource supplies the three record sets the engine consumes. The
// engine only reads; it never filters, paginates, or writes back.
type DataSource interface {
	Bills(ctx context.Context) ([]models.BillLineItem, error)
	Products(ctx context.Context) ([]models.Product, error)
	MarketDemand(ctx context.Context) ([]models.MarketDemandSignal, error)
}

// Config tunes the engine's two pipelines.
type Config struct {
	Forecast           ForecastConfig
	Bundles            BundleConfig
	DefaultDemandScore float64
}

// DefaultEngineConfig returns the stock engine configuration.
func DefaultEngineConfig() Config {
	return Config{
		Forecast:           ForecastConfig{Trees: 100, Seed: 42, TestFraction: 0.2},
		Bundles:            BundleConfig{MinSupport: 0.01, MinConfidence: 0.3, Discount: 0.1},
		DefaultDemandScore: 50,
	}
}

// Engine runs the recommendation and bundle pipelines. Each call
// fetches fresh data and trains a fresh model; an Engine holds no
// mutable state, so concurrent calls need no coordination.
type Engine struct {
	source DataSource
	config Config
}

// NewEngine creates an engine reading from source.
func NewEngine(source DataSource, config Config) *Engine {
	return &Engine{source: source, config: config}
}

// Recommendations computes one restocking recommendation per SKU with
// sales history, ordered by risk label descending. Empty inputs yield
// an empty list, not an error.
func (e *Engine) Recommendations(ctx context.Context) ([]models.Recommendation, error) {
	start := time.Now()

	fused, err := e.fuse(ctx)
	if err != nil {
		metrics.RecordRecommendationRun("error", time.Since(start))
		return nil, err
	}
	if len(fused.Records) == 0 {
		metrics.RecordRecommendationRun("empty", time.Since(start))
		return []models.Recommendation{}, nil
	}

	aggregated := Aggregate(fused.Records, e.config.DefaultDemandScore)
	predictions, err := Forecast(aggregated, e.config.Forecast)
	if err != nil {
		metrics.RecordRecommendationRun("error", time.Since(start))
		return nil, err
	}

	out := make([]models.Recommendation, 0, len(aggregated))
	for i, m := range aggregated {
		recommended := RecommendedStock(predictions[i], m.LowStockThreshold)
		out = append(out, models.Recommendation{
			SKU:               m.SKU,
			Name:              m.Name,
			Category:          m.Category,
			CurrentStock:      m.Stock,
			PredictedDemand:   predictions[i],
			RecommendedStock:  recommended,
			RiskLevel:         ClassifyRisk(m.Stock, recommended, m.DemandScore),
			MarketDemandScore: m.DemandScore,
			Price:             m.Price,
		})
	}

	// The sort key is the label string itself, descending. The input
	// is SKU-ordered and the sort is stable, so equal labels keep a
	// deterministic relative order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RiskLevel > out[j].RiskLevel
	})

	logger := logging.Ctx(ctx)
	logger.Info().
		Int("products", len(out)).
		Dur("elapsed", time.Since(start)).
		Msg("recommendations computed")
	metrics.RecordRecommendationRun("success", time.Since(start))
	return out, nil
}

// Bundles mines co-purchase bundles, ordered by confidence descending.
// Empty inputs yield an empty list, not an error.
func (e *Engine) Bundles(ctx context.Context) ([]models.Bundle, error) {
	fused, err := e.fuse(ctx)
	if err != nil {
		metrics.RecordBundleRun("error")
		return nil, err
	}
	if len(fused.Records) == 0 {
		metrics.RecordBundleRun("empty")
		return []models.Bundle{}, nil
	}

	products, err := e.source.Products(ctx)
	if err != nil {
		metrics.RecordBundleRun("error")
		return nil, fmt.Errorf("fetch products: %w", err)
	}

	bundles, err := MineBundles(fused.Records, products, e.config.Bundles)
	if err != nil {
		metrics.RecordBundleRun("error")
		return nil, err
	}
	if bundles == nil {
		bundles = []models.Bundle{}
	}

	logger := logging.Ctx(ctx)
	logger.Info().Int("bundles", len(bundles)).Msg("bundles mined")
	metrics.RecordBundleRun("success")
	return bundles, nil
}

func (e *Engine) fuse(ctx context.Context) (FusionResult, error) {
	bills, err := e.source.Bills(ctx)
	if err != nil {
		return FusionResult{}, fmt.Errorf("fetch bills: %w", err)
	}
	products, err := e.source.Products(ctx)
	if err != nil {
		return FusionResult{}, fmt.Errorf("fetch products: %w", err)
	}
	demand, err := e.source.MarketDemand(ctx)
	if err != nil {
		return FusionResult{}, fmt.Errorf("fetch market demand: %w", err)
	}

	fused := Fuse(bills, products, demand)
	if fused.DroppedLines > 0 {
		logger := logging.Ctx(ctx)
		logger.Warn().
			Int("dropped", fused.DroppedLines).
			Msg("bill lines without catalog match dropped during fusion")
		metrics.FusionDroppedRows.Add(float64(fused.DroppedLines))
	}
	return fused, nil
}
