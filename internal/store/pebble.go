// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/jomermandap/softeng-ims/internal/metrics"
	"github.com/jomermandap/softeng-ims/internal/models"
)

// Key prefixes partition the three datasets inside one Pebble keyspace.
// Products and demand signals are keyed by SKU so re-ingestion replaces
// rows; bill lines get a fresh UUID per line so duplicates accumulate.
const (
	prefixProduct = "product:"
	prefixBill    = "bill:"
	prefixDemand  = "demand:"
)

// PebbleStore implements Store on a Pebble database.
type PebbleStore struct {
	db     *pebble.DB
	closed atomic.Bool
}

// NewPebbleStore opens (or creates) the Pebble database at dir.
func NewPebbleStore(dir string) (*PebbleStore, error) {
	opts := &pebble.Options{
		MemTableSize:          64 << 20,
		L0CompactionThreshold: 4,
	}
	db, err := pebble.Open(filepath.Clean(dir), opts)
	if err != nil {
		return nil, fmt.Errorf("pebble open %s: %w", dir, err)
	}
	return &PebbleStore{db: db}, nil
}

// Close closes the underlying database. Subsequent calls are no-ops.
func (s *PebbleStore) Close() error {
	if s.closed.Swap(true) {
		return nil
	}
	return s.db.Close()
}

// Products returns the catalog ordered by SKU. Pebble iterates keys in
// byte order, so the prefix scan yields SKU-ascending rows directly.
func (s *PebbleStore) Products(ctx context.Context) ([]models.Product, error) {
	var out []models.Product
	err := s.scan(ctx, "products", prefixProduct, func(v []byte) error {
		var p models.Product
		if err := json.Unmarshal(v, &p); err != nil {
			return fmt.Errorf("decode product: %w", err)
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

// Bills returns all bill line items in key order.
func (s *PebbleStore) Bills(ctx context.Context) ([]models.BillLineItem, error) {
	var out []models.BillLineItem
	err := s.scan(ctx, "bills", prefixBill, func(v []byte) error {
		var line models.BillLineItem
		if err := json.Unmarshal(v, &line); err != nil {
			return fmt.Errorf("decode bill line: %w", err)
		}
		out = append(out, line)
		return nil
	})
	return out, err
}

// MarketDemand returns all demand signals ordered by SKU.
func (s *PebbleStore) MarketDemand(ctx context.Context) ([]models.MarketDemandSignal, error) {
	var out []models.MarketDemandSignal
	err := s.scan(ctx, "demand", prefixDemand, func(v []byte) error {
		var sig models.MarketDemandSignal
		if err := json.Unmarshal(v, &sig); err != nil {
			return fmt.Errorf("decode demand signal: %w", err)
		}
		out = append(out, sig)
		return nil
	})
	return out, err
}

// PutProduct inserts or replaces a catalog entry.
func (s *PebbleStore) PutProduct(ctx context.Context, p models.Product) error {
	return s.put(ctx, prefixProduct+p.SKU, p)
}

// PutBillLine appends one bill line item. Each line gets a UUID key so
// repeated lines for the same bill and SKU are kept as separate rows.
func (s *PebbleStore) PutBillLine(ctx context.Context, line models.BillLineItem) error {
	return s.put(ctx, prefixBill+uuid.New().String(), line)
}

// PutDemandSignal inserts or replaces a demand signal.
func (s *PebbleStore) PutDemandSignal(ctx context.Context, sig models.MarketDemandSignal) error {
	return s.put(ctx, prefixDemand+sig.ProductSKU, sig)
}

func (s *PebbleStore) put(ctx context.Context, key string, v any) error {
	if s.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := s.db.Set([]byte(key), data, pebble.Sync); err != nil {
		return fmt.Errorf("pebble set %s: %w", key, err)
	}
	return nil
}

// scan iterates all keys under prefix and passes each value to fn.
func (s *PebbleStore) scan(ctx context.Context, dataset, prefix string, fn func([]byte) error) error {
	if s.closed.Load() {
		return ErrClosed
	}
	start := time.Now()
	defer func() { metrics.RecordStoreQuery(dataset, time.Since(start)) }()

	lower := []byte(prefix)
	upper := append([]byte(prefix[:len(prefix)-1]), prefix[len(prefix)-1]+1)
	it, err := s.db.NewIter(&pebble.IterOptions{LowerBound: lower, UpperBound: upper})
	if err != nil {
		return fmt.Errorf("pebble iter %s: %w", prefix, err)
	}
	defer it.Close()

	for it.First(); it.Valid(); it.Next() {
		if err := ctx.Err(); err != nil {
			return err
		}
		val, err := it.ValueAndErr()
		if err != nil {
			return fmt.Errorf("pebble value %s: %w", it.Key(), err)
		}
		if err := fn(val); err != nil {
			return err
		}
	}
	return it.Error()
}
