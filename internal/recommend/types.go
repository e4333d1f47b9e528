// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package recommend

import (
	"errors"
	"fmt"
)

// FusedRecord is one bill line joined with its catalog row and, when
// available, the product's market demand score.
type FusedRecord struct {
	BillNumber        int
	SKU               string
	Quantity          int
	TotalAmount       float64
	Name              string
	Category          string
	Stock             int
	LowStockThreshold int
	Price             float64

	// DemandScore is nil when the product has no market demand signal.
	DemandScore *float64
}

// FusionResult carries the joined dataset plus join diagnostics.
type FusionResult struct {
	Records []FusedRecord

	// DroppedLines counts bill lines discarded because no catalog row
	// matched their SKU.
	DroppedLines int
}

// ProductMetrics is the per-SKU aggregate the forecaster consumes.
type ProductMetrics struct {
	SKU               string
	Name              string
	Category          string
	Stock             int
	LowStockThreshold int
	Price             float64
	TotalQuantity     float64
	AvgQuantity       float64
	TotalRevenue      float64
	AvgRevenue        float64
	DemandScore       float64
}

// Risk labels, from most to least urgent.
const (
	RiskHigh     = "HIGH"
	RiskMedium   = "MEDIUM"
	RiskLowWatch = "LOW-WATCH"
	RiskLow      = "LOW"
)

// ErrModelFit indicates the demand forecast model could not be trained,
// typically because the dataset is too small to split.
var ErrModelFit = errors.New("recommend: model fit failed")

// CatalogLookupError indicates a SKU referenced during result assembly
// is missing from the product catalog.
type CatalogLookupError struct {
	SKU string
}

func (e *CatalogLookupError) Error() string {
	return fmt.Sprintf("recommend: sku %q not found in product catalog", e.SKU)
}
