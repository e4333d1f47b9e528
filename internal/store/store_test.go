// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package store

import (
	"context"
	"testing"

	"github.com/jomermandap/softeng-ims/internal/models"
)

// storeFactories lets the same contract tests run against both
// implementations.
var storeFactories = map[string]func(t *testing.T) Store{
	"memory": func(t *testing.T) Store {
		return NewMemoryStore()
	},
	"pebble": func(t *testing.T) Store {
		s, err := NewPebbleStore(t.TempDir())
		if err != nil {
			t.Fatalf("open pebble: %v", err)
		}
		return s
	},
}

func TestProductsRoundTrip(t *testing.T) {
	for name, newStore := range storeFactories {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			defer s.Close()

			// Inserted out of order; reads come back SKU-ascending.
			products := []models.Product{
				{SKU: "C", Name: "Cog", Stock: 3, Price: 30},
				{SKU: "A", Name: "Widget", Stock: 1, Price: 10},
				{SKU: "B", Name: "Gadget", Stock: 2, Price: 20},
			}
			for _, p := range products {
				if err := s.PutProduct(ctx, p); err != nil {
					t.Fatalf("put product: %v", err)
				}
			}

			got, err := s.Products(ctx)
			if err != nil {
				t.Fatalf("read products: %v", err)
			}
			if len(got) != 3 {
				t.Fatalf("expected 3 products, got %d", len(got))
			}
			for i, want := range []string{"A", "B", "C"} {
				if got[i].SKU != want {
					t.Errorf("position %d: got %s, want %s", i, got[i].SKU, want)
				}
			}
		})
	}
}

func TestPutProductReplaces(t *testing.T) {
	for name, newStore := range storeFactories {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			defer s.Close()

			if err := s.PutProduct(ctx, models.Product{SKU: "A", Stock: 1}); err != nil {
				t.Fatalf("put: %v", err)
			}
			if err := s.PutProduct(ctx, models.Product{SKU: "A", Stock: 9}); err != nil {
				t.Fatalf("put: %v", err)
			}

			got, err := s.Products(ctx)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if len(got) != 1 || got[0].Stock != 9 {
				t.Errorf("expected single row with stock 9, got %+v", got)
			}
		})
	}
}

func TestBillLinesAccumulate(t *testing.T) {
	for name, newStore := range storeFactories {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			defer s.Close()

			line := models.BillLineItem{BillNumber: 1, ProductSKU: "A", Quantity: 2, TotalAmount: 20}
			// Identical lines must be kept as separate rows.
			if err := s.PutBillLine(ctx, line); err != nil {
				t.Fatalf("put: %v", err)
			}
			if err := s.PutBillLine(ctx, line); err != nil {
				t.Fatalf("put: %v", err)
			}

			got, err := s.Bills(ctx)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if len(got) != 2 {
				t.Errorf("expected 2 bill lines, got %d", len(got))
			}
		})
	}
}

func TestDemandSignalRoundTrip(t *testing.T) {
	for name, newStore := range storeFactories {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			defer s.Close()

			if err := s.PutDemandSignal(ctx, models.MarketDemandSignal{ProductSKU: "A", Score: 60}); err != nil {
				t.Fatalf("put: %v", err)
			}
			if err := s.PutDemandSignal(ctx, models.MarketDemandSignal{ProductSKU: "A", Score: 75}); err != nil {
				t.Fatalf("put: %v", err)
			}

			got, err := s.MarketDemand(ctx)
			if err != nil {
				t.Fatalf("read: %v", err)
			}
			if len(got) != 1 || got[0].Score != 75 {
				t.Errorf("expected single signal with score 75, got %+v", got)
			}
		})
	}
}

func TestEmptyStoreReads(t *testing.T) {
	for name, newStore := range storeFactories {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			defer s.Close()

			if got, err := s.Products(ctx); err != nil || len(got) != 0 {
				t.Errorf("products: got %v, %v", got, err)
			}
			if got, err := s.Bills(ctx); err != nil || len(got) != 0 {
				t.Errorf("bills: got %v, %v", got, err)
			}
			if got, err := s.MarketDemand(ctx); err != nil || len(got) != 0 {
				t.Errorf("demand: got %v, %v", got, err)
			}
		})
	}
}

func TestClosedStore(t *testing.T) {
	for name, newStore := range storeFactories {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			s := newStore(t)
			if err := s.Close(); err != nil {
				t.Fatalf("close: %v", err)
			}

			if _, err := s.Products(ctx); err == nil {
				t.Error("expected error reading closed store")
			}
			if err := s.PutProduct(ctx, models.Product{SKU: "A"}); err == nil {
				t.Error("expected error writing closed store")
			}
		})
	}
}
