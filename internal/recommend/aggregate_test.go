// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package recommend

import (
	"math"
	"testing"
)

func score(v float64) *float64 { return &v }

func TestAggregateMetrics(t *testing.T) {
	records := []FusedRecord{
		{BillNumber: 1, SKU: "B", Quantity: 4, TotalAmount: 40, Name: "Gadget", Stock: 7, LowStockThreshold: 3, Price: 10},
		{BillNumber: 1, SKU: "A", Quantity: 3, TotalAmount: 30, Name: "Widget", Stock: 5, LowStockThreshold: 2, Price: 10, DemandScore: score(60)},
		{BillNumber: 2, SKU: "A", Quantity: 1, TotalAmount: 10, Name: "Widget", Stock: 5, LowStockThreshold: 2, Price: 10, DemandScore: score(80)},
	}

	out := Aggregate(records, 50)

	if len(out) != 2 {
		t.Fatalf("expected 2 products, got %d", len(out))
	}
	if out[0].SKU != "A" || out[1].SKU != "B" {
		t.Fatalf("expected SKU-ascending order, got %s, %s", out[0].SKU, out[1].SKU)
	}

	a := out[0]
	if a.TotalQuantity != 4 || a.AvgQuantity != 2 {
		t.Errorf("A quantity: got total %v avg %v", a.TotalQuantity, a.AvgQuantity)
	}
	if a.TotalRevenue != 40 || a.AvgRevenue != 20 {
		t.Errorf("A revenue: got total %v avg %v", a.TotalRevenue, a.AvgRevenue)
	}
	if a.DemandScore != 70 {
		t.Errorf("A demand score: expected mean 70, got %v", a.DemandScore)
	}
	if a.Name != "Widget" || a.Stock != 5 || a.Price != 10 {
		t.Errorf("A catalog fields wrong: %+v", a)
	}

	// B has no signal; the default applies per product.
	if out[1].DemandScore != 50 {
		t.Errorf("B demand score: expected default 50, got %v", out[1].DemandScore)
	}
}

func TestAggregateFirstSeenCatalogFields(t *testing.T) {
	// Catalog fields are taken from the first record of the group even
	// when later rows disagree; the aggregator does not cross-check.
	records := []FusedRecord{
		{BillNumber: 1, SKU: "A", Quantity: 1, TotalAmount: 5, Name: "First", Stock: 9},
		{BillNumber: 2, SKU: "A", Quantity: 1, TotalAmount: 5, Name: "Second", Stock: 3},
	}

	out := Aggregate(records, 50)
	if len(out) != 1 {
		t.Fatalf("expected 1 product, got %d", len(out))
	}
	if out[0].Name != "First" || out[0].Stock != 9 {
		t.Errorf("expected first-seen catalog fields, got %+v", out[0])
	}
}

func TestAggregateEmpty(t *testing.T) {
	if out := Aggregate(nil, 50); out != nil {
		t.Errorf("expected nil for empty input, got %v", out)
	}
}

func TestAggregateAveragesAreExact(t *testing.T) {
	records := []FusedRecord{
		{BillNumber: 1, SKU: "A", Quantity: 1, TotalAmount: 1},
		{BillNumber: 2, SKU: "A", Quantity: 2, TotalAmount: 2},
		{BillNumber: 3, SKU: "A", Quantity: 4, TotalAmount: 4},
	}
	out := Aggregate(records, 50)
	want := 7.0 / 3.0
	if math.Abs(out[0].AvgQuantity-want) > 1e-12 {
		t.Errorf("avg quantity: got %v, want %v", out[0].AvgQuantity, want)
	}
}
