// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

// Package store persists the three datasets the analytics pipeline
// consumes: the product catalog, bill line items, and market demand
// signals.
package store

import (
	"context"
	"errors"

	"github.com/jomermandap/softeng-ims/internal/models"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store: closed")

// Store provides read access to the datasets feeding the analytics
// pipeline and write access for ingestion.
type Store interface {
	// Products returns the full product catalog, ordered by SKU.
	Products(ctx context.Context) ([]models.Product, error)

	// Bills returns all bill line items, ordered by insertion key.
	Bills(ctx context.Context) ([]models.BillLineItem, error)

	// MarketDemand returns all market demand signals, ordered by SKU.
	MarketDemand(ctx context.Context) ([]models.MarketDemandSignal, error)

	// PutProduct inserts or replaces a catalog entry keyed by SKU.
	PutProduct(ctx context.Context, p models.Product) error

	// PutBillLine appends a bill line item.
	PutBillLine(ctx context.Context, line models.BillLineItem) error

	// PutDemandSignal inserts or replaces a demand signal keyed by SKU.
	PutDemandSignal(ctx context.Context, s models.MarketDemandSignal) error

	// Close releases the underlying resources.
	Close() error
}
