// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package recommend

import (
	"errors"
	"math"
	"testing"
)

func testMetrics(n int) []ProductMetrics {
	out := make([]ProductMetrics, n)
	for i := range out {
		out[i] = ProductMetrics{
			SKU:           string(rune('A' + i)),
			Stock:         5 + i,
			Price:         10 * float64(i+1),
			TotalQuantity: float64(3 * (i + 1)),
			AvgQuantity:   float64(i + 1),
			TotalRevenue:  float64(30 * (i + 1)),
			AvgRevenue:    float64(10 * (i + 1)),
			DemandScore:   50,
		}
	}
	return out
}

func TestForecastDeterminism(t *testing.T) {
	cfg := ForecastConfig{Trees: 20, Seed: 42, TestFraction: 0.2}
	products := testMetrics(10)

	first, err := Forecast(products, cfg)
	if err != nil {
		t.Fatalf("first run failed: %v", err)
	}
	second, err := Forecast(products, cfg)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}

	if len(first) != len(products) {
		t.Fatalf("expected %d predictions, got %d", len(products), len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("prediction %d differs between runs: %v vs %v", i, first[i], second[i])
		}
		if math.IsNaN(first[i]) || math.IsInf(first[i], 0) {
			t.Errorf("prediction %d is not finite: %v", i, first[i])
		}
	}
}

func TestForecastSingleProductFails(t *testing.T) {
	cfg := ForecastConfig{Trees: 10, Seed: 42, TestFraction: 0.2}
	_, err := Forecast(testMetrics(1), cfg)
	if !errors.Is(err, ErrModelFit) {
		t.Fatalf("expected ErrModelFit for single product, got %v", err)
	}
}

func TestForecastEmpty(t *testing.T) {
	out, err := Forecast(nil, ForecastConfig{Trees: 10, Seed: 42, TestFraction: 0.2})
	if err != nil || out != nil {
		t.Fatalf("expected nil, nil for empty input, got %v, %v", out, err)
	}
}

func TestRecommendedStock(t *testing.T) {
	tests := []struct {
		name      string
		predicted float64
		threshold int
		want      int
	}{
		{"prediction dominates", 10, 2, 15},
		{"threshold floor dominates", 1, 5, 15},
		{"fractional prediction floors", 4.9, 1, 7},
		{"zero prediction", 0, 2, 6},
		{"both zero", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RecommendedStock(tt.predicted, tt.threshold); got != tt.want {
				t.Errorf("RecommendedStock(%v, %d) = %d, want %d",
					tt.predicted, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestRecommendedStockLowerBound(t *testing.T) {
	// recommended stock never drops below three times the threshold
	for threshold := 0; threshold <= 10; threshold++ {
		for _, predicted := range []float64{0, 0.5, 3, 17.3, 100} {
			got := RecommendedStock(predicted, threshold)
			if got < threshold*3 {
				t.Fatalf("RecommendedStock(%v, %d) = %d below floor %d",
					predicted, threshold, got, threshold*3)
			}
		}
	}
}
