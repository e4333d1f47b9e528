// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

// Package forest implements a random forest regressor for demand
// forecasting.
//
// The forest is an ensemble of CART regression trees, each trained on a
// bootstrap sample of the training set. All randomness flows from a
// single seeded source, so training the same data with the same
// configuration always yields the same model.
package forest

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Config contains configuration for the random forest regressor.
type Config struct {
	// NumTrees is the ensemble size. Typical range: 50-500.
	NumTrees int

	// Seed drives bootstrap sampling. Equal seeds and equal training
	// data produce identical forests.
	Seed int64

	// MinSamplesSplit is the minimum node size eligible for splitting.
	// Nodes below this size become leaves. If < 2, defaults to 2.
	MinSamplesSplit int

	// MaxDepth caps tree depth. 0 means unlimited.
	MaxDepth int
}

// DefaultConfig returns a configuration matching the service defaults.
func DefaultConfig() Config {
	return Config{
		NumTrees:        100,
		Seed:            42,
		MinSamplesSplit: 2,
	}
}

// Forest is a trained random forest regressor. Fit must be called
// before Predict. A Forest is safe for concurrent Predict calls once
// trained.
type Forest struct {
	config      Config
	trees       []*node
	numFeatures int
	fitted      bool
}

// node is one CART tree node. Leaves have feature == -1.
type node struct {
	feature   int
	threshold float64
	value     float64
	left      *node
	right     *node
}

// ErrNotFitted is returned by Predict on an untrained forest.
var ErrNotFitted = errors.New("forest: not fitted")

// ErrNoTrainingData is returned by Fit when the training set is empty.
var ErrNoTrainingData = errors.New("forest: empty training set")

// New creates an untrained forest with the given configuration.
func New(config Config) *Forest {
	if config.NumTrees < 1 {
		config.NumTrees = DefaultConfig().NumTrees
	}
	if config.MinSamplesSplit < 2 {
		config.MinSamplesSplit = 2
	}
	return &Forest{config: config}
}

// Fit trains the ensemble on feature matrix features and target vector
// targets. Every row of features must have the same length, and
// len(features) must equal len(targets).
func (f *Forest) Fit(features [][]float64, targets []float64) error {
	if len(features) == 0 {
		return ErrNoTrainingData
	}
	if len(features) != len(targets) {
		return fmt.Errorf("forest: %d feature rows but %d targets", len(features), len(targets))
	}
	f.numFeatures = len(features[0])
	for i, row := range features {
		if len(row) != f.numFeatures {
			return fmt.Errorf("forest: row %d has %d features, want %d", i, len(row), f.numFeatures)
		}
	}

	rng := rand.New(rand.NewSource(f.config.Seed))
	f.trees = make([]*node, f.config.NumTrees)
	n := len(features)

	for t := 0; t < f.config.NumTrees; t++ {
		// Bootstrap sample: n draws with replacement.
		indices := make([]int, n)
		for i := range indices {
			indices[i] = rng.Intn(n)
		}
		f.trees[t] = f.buildTree(features, targets, indices, 0)
	}

	f.fitted = true
	return nil
}

// Predict returns the ensemble mean prediction for one feature row.
func (f *Forest) Predict(row []float64) (float64, error) {
	if !f.fitted {
		return 0, ErrNotFitted
	}
	if len(row) != f.numFeatures {
		return 0, fmt.Errorf("forest: got %d features, want %d", len(row), f.numFeatures)
	}
	var sum float64
	for _, tree := range f.trees {
		sum += predictTree(tree, row)
	}
	return sum / float64(len(f.trees)), nil
}

func predictTree(nd *node, row []float64) float64 {
	for nd.feature >= 0 {
		if row[nd.feature] <= nd.threshold {
			nd = nd.left
		} else {
			nd = nd.right
		}
	}
	return nd.value
}

// buildTree grows one CART tree over the sample identified by indices.
func (f *Forest) buildTree(features [][]float64, targets []float64, indices []int, depth int) *node {
	if len(indices) < f.config.MinSamplesSplit ||
		(f.config.MaxDepth > 0 && depth >= f.config.MaxDepth) ||
		isConstant(targets, indices) {
		return &node{feature: -1, value: mean(targets, indices)}
	}

	feature, threshold, ok := f.bestSplit(features, targets, indices)
	if !ok {
		return &node{feature: -1, value: mean(targets, indices)}
	}

	var left, right []int
	for _, i := range indices {
		if features[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}

	return &node{
		feature:   feature,
		threshold: threshold,
		left:      f.buildTree(features, targets, left, depth+1),
		right:     f.buildTree(features, targets, right, depth+1),
	}
}

// bestSplit finds the feature and threshold minimizing the weighted sum
// of squared errors across the two children. Returns ok=false when no
// feature separates the sample.
func (f *Forest) bestSplit(features [][]float64, targets []float64, indices []int) (int, float64, bool) {
	bestSSE := math.Inf(1)
	bestFeature, bestThreshold := -1, 0.0

	order := make([]int, len(indices))
	for feature := 0; feature < f.numFeatures; feature++ {
		copy(order, indices)
		sort.Slice(order, func(a, b int) bool {
			return features[order[a]][feature] < features[order[b]][feature]
		})

		// Prefix sums over the sorted order allow O(1) SSE per cut.
		var sumL, sumSqL float64
		var sumR, sumSqR float64
		for _, i := range order {
			sumR += targets[i]
			sumSqR += targets[i] * targets[i]
		}

		for cut := 0; cut < len(order)-1; cut++ {
			y := targets[order[cut]]
			sumL += y
			sumSqL += y * y
			sumR -= y
			sumSqR -= y * y

			cur := features[order[cut]][feature]
			next := features[order[cut+1]][feature]
			if cur == next {
				continue
			}

			nL := float64(cut + 1)
			nR := float64(len(order) - cut - 1)
			sse := (sumSqL - sumL*sumL/nL) + (sumSqR - sumR*sumR/nR)
			if sse < bestSSE {
				bestSSE = sse
				bestFeature = feature
				bestThreshold = (cur + next) / 2
			}
		}
	}

	return bestFeature, bestThreshold, bestFeature >= 0
}

func isConstant(targets []float64, indices []int) bool {
	for _, i := range indices[1:] {
		if targets[i] != targets[indices[0]] {
			return false
		}
	}
	return true
}

func mean(targets []float64, indices []int) float64 {
	var sum float64
	for _, i := range indices {
		sum += targets[i]
	}
	return sum / float64(len(indices))
}
