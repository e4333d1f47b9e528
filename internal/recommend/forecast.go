// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package recommend

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jomermandap/softeng-ims/internal/recommend/forest"
)

// ForecastConfig tunes the demand forecast model.
type ForecastConfig struct {
	Trees        int
	Seed         int64
	TestFraction float64
}

// Forecast trains a random forest on the aggregated product metrics and
// predicts demand for every product. The target is total quantity sold;
// the feature vector also contains quantity-derived aggregates, which
// is inherited behavior kept on purpose.
//
// A fraction of rows is held out from training to mirror a standard
// train/test discipline; the holdout is never evaluated. Training on a
// single product leaves the training partition empty and returns
// ErrModelFit.
func Forecast(products []ProductMetrics, cfg ForecastConfig) ([]float64, error) {
	if len(products) == 0 {
		return nil, nil
	}

	features := make([][]float64, len(products))
	targets := make([]float64, len(products))
	for i, m := range products {
		features[i] = []float64{
			m.TotalQuantity,
			m.AvgQuantity,
			m.TotalRevenue,
			m.AvgRevenue,
			float64(m.Stock),
			m.Price,
			m.DemandScore,
		}
		targets[i] = m.TotalQuantity
	}

	trainIdx := trainIndices(len(products), cfg.TestFraction, cfg.Seed)
	if len(trainIdx) == 0 {
		return nil, fmt.Errorf("%w: %d products leave no training rows at test fraction %v",
			ErrModelFit, len(products), cfg.TestFraction)
	}

	trainX := make([][]float64, len(trainIdx))
	trainY := make([]float64, len(trainIdx))
	for i, idx := range trainIdx {
		trainX[i] = features[idx]
		trainY[i] = targets[idx]
	}

	model := forest.New(forest.Config{NumTrees: cfg.Trees, Seed: cfg.Seed, MinSamplesSplit: 2})
	if err := model.Fit(trainX, trainY); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrModelFit, err)
	}

	predictions := make([]float64, len(products))
	for i := range products {
		pred, err := model.Predict(features[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrModelFit, err)
		}
		predictions[i] = pred
	}
	return predictions, nil
}

// trainIndices deterministically shuffles row indices with the given
// seed and drops ceil(fraction*n) rows as the test partition.
func trainIndices(n int, fraction float64, seed int64) []int {
	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(n, func(i, j int) { indices[i], indices[j] = indices[j], indices[i] })

	nTest := int(math.Ceil(fraction * float64(n)))
	if nTest > n {
		nTest = n
	}
	return indices[nTest:]
}

// RecommendedStock derives the restock target from the prediction and
// the product's low stock threshold.
func RecommendedStock(predicted float64, lowStockThreshold int) int {
	boosted := int(math.Floor(predicted * 1.5))
	if floor := lowStockThreshold * 3; floor > boosted {
		return floor
	}
	return boosted
}
