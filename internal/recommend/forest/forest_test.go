// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package forest

import (
	"errors"
	"math"
	"testing"
)

func trainingSet() ([][]float64, []float64) {
	features := [][]float64{
		{1, 10}, {2, 20}, {3, 30}, {4, 40},
		{5, 50}, {6, 60}, {7, 70}, {8, 80},
	}
	targets := []float64{2, 4, 6, 8, 10, 12, 14, 16}
	return features, targets
}

func TestFitAndPredict(t *testing.T) {
	features, targets := trainingSet()
	f := New(Config{NumTrees: 25, Seed: 42})
	if err := f.Fit(features, targets); err != nil {
		t.Fatalf("fit failed: %v", err)
	}

	for i, row := range features {
		pred, err := f.Predict(row)
		if err != nil {
			t.Fatalf("predict row %d: %v", i, err)
		}
		if math.IsNaN(pred) || math.IsInf(pred, 0) {
			t.Fatalf("row %d: prediction not finite: %v", i, pred)
		}
		// Predictions stay within the target range: leaves average
		// training targets.
		if pred < 2 || pred > 16 {
			t.Errorf("row %d: prediction %v outside target range [2, 16]", i, pred)
		}
	}
}

func TestDeterminism(t *testing.T) {
	features, targets := trainingSet()

	a := New(Config{NumTrees: 25, Seed: 42})
	b := New(Config{NumTrees: 25, Seed: 42})
	if err := a.Fit(features, targets); err != nil {
		t.Fatalf("fit a: %v", err)
	}
	if err := b.Fit(features, targets); err != nil {
		t.Fatalf("fit b: %v", err)
	}

	for i, row := range features {
		pa, _ := a.Predict(row)
		pb, _ := b.Predict(row)
		if pa != pb {
			t.Errorf("row %d: same seed diverged: %v vs %v", i, pa, pb)
		}
	}
}

func TestDifferentSeedsDiffer(t *testing.T) {
	features, targets := trainingSet()

	a := New(Config{NumTrees: 25, Seed: 1})
	b := New(Config{NumTrees: 25, Seed: 2})
	if err := a.Fit(features, targets); err != nil {
		t.Fatalf("fit a: %v", err)
	}
	if err := b.Fit(features, targets); err != nil {
		t.Fatalf("fit b: %v", err)
	}

	var diverged bool
	for _, row := range features {
		pa, _ := a.Predict(row)
		pb, _ := b.Predict(row)
		if pa != pb {
			diverged = true
			break
		}
	}
	if !diverged {
		t.Error("expected different seeds to produce different ensembles")
	}
}

func TestConstantTarget(t *testing.T) {
	features := [][]float64{{1}, {2}, {3}}
	targets := []float64{7, 7, 7}

	f := New(Config{NumTrees: 5, Seed: 42})
	if err := f.Fit(features, targets); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	pred, err := f.Predict([]float64{99})
	if err != nil {
		t.Fatalf("predict failed: %v", err)
	}
	if pred != 7 {
		t.Errorf("constant target: got %v, want 7", pred)
	}
}

func TestFitErrors(t *testing.T) {
	f := New(Config{NumTrees: 5, Seed: 42})

	if err := f.Fit(nil, nil); !errors.Is(err, ErrNoTrainingData) {
		t.Errorf("empty fit: expected ErrNoTrainingData, got %v", err)
	}
	if err := f.Fit([][]float64{{1}}, []float64{1, 2}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
	if err := f.Fit([][]float64{{1, 2}, {1}}, []float64{1, 2}); err == nil {
		t.Error("expected error for ragged feature rows")
	}
}

func TestPredictErrors(t *testing.T) {
	f := New(Config{NumTrees: 5, Seed: 42})
	if _, err := f.Predict([]float64{1}); !errors.Is(err, ErrNotFitted) {
		t.Errorf("expected ErrNotFitted, got %v", err)
	}

	if err := f.Fit([][]float64{{1, 2}, {3, 4}}, []float64{1, 2}); err != nil {
		t.Fatalf("fit failed: %v", err)
	}
	if _, err := f.Predict([]float64{1}); err == nil {
		t.Error("expected error for wrong feature count")
	}
}
