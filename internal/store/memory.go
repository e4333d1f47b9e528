// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package store

import (
	"context"
	"sort"
	"sync"

	"github.com/jomermandap/softeng-ims/internal/models"
)

// MemoryStore is an in-memory Store used by tests and by the engine's
// fixture-driven entry points.
type MemoryStore struct {
	mu       sync.RWMutex
	products map[string]models.Product
	bills    []models.BillLineItem
	demand   map[string]models.MarketDemandSignal
	closed   bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		products: make(map[string]models.Product),
		demand:   make(map[string]models.MarketDemandSignal),
	}
}

// Products returns the catalog ordered by SKU.
func (s *MemoryStore) Products(ctx context.Context) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	out := make([]models.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out, nil
}

// Bills returns bill line items in insertion order.
func (s *MemoryStore) Bills(ctx context.Context) ([]models.BillLineItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	out := make([]models.BillLineItem, len(s.bills))
	copy(out, s.bills)
	return out, nil
}

// MarketDemand returns demand signals ordered by SKU.
func (s *MemoryStore) MarketDemand(ctx context.Context) ([]models.MarketDemandSignal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(ctx); err != nil {
		return nil, err
	}
	out := make([]models.MarketDemandSignal, 0, len(s.demand))
	for _, sig := range s.demand {
		out = append(out, sig)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductSKU < out[j].ProductSKU })
	return out, nil
}

// PutProduct inserts or replaces a catalog entry.
func (s *MemoryStore) PutProduct(ctx context.Context, p models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	s.products[p.SKU] = p
	return nil
}

// PutBillLine appends a bill line item.
func (s *MemoryStore) PutBillLine(ctx context.Context, line models.BillLineItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	s.bills = append(s.bills, line)
	return nil
}

// PutDemandSignal inserts or replaces a demand signal.
func (s *MemoryStore) PutDemandSignal(ctx context.Context, sig models.MarketDemandSignal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(ctx); err != nil {
		return err
	}
	s.demand[sig.ProductSKU] = sig
	return nil
}

// Close marks the store closed.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *MemoryStore) check(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}
	return ctx.Err()
}
