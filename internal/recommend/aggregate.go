// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package recommend

import (
	"sort"
)

// Aggregate groups fused records by SKU and computes the per-product
// sales metrics the forecaster consumes. Catalog fields take the
// first-seen value per group; rows within a group are assumed
// consistent and are not cross-checked. The demand score is the mean of
// the group's present signals, falling back to defaultScore when the
// group has none. The result is ordered by SKU ascending.
func Aggregate(records []FusedRecord, defaultScore float64) []ProductMetrics {
	if len(records) == 0 {
		return nil
	}

	type accumulator struct {
		metrics    ProductMetrics
		lines      int
		scoreSum   float64
		scoreCount int
	}

	groups := make(map[string]*accumulator)
	order := make([]string, 0)
	for _, rec := range records {
		acc, ok := groups[rec.SKU]
		if !ok {
			acc = &accumulator{metrics: ProductMetrics{
				SKU:               rec.SKU,
				Name:              rec.Name,
				Category:          rec.Category,
				Stock:             rec.Stock,
				LowStockThreshold: rec.LowStockThreshold,
				Price:             rec.Price,
			}}
			groups[rec.SKU] = acc
			order = append(order, rec.SKU)
		}
		acc.lines++
		acc.metrics.TotalQuantity += float64(rec.Quantity)
		acc.metrics.TotalRevenue += rec.TotalAmount
		if rec.DemandScore != nil {
			acc.scoreSum += *rec.DemandScore
			acc.scoreCount++
		}
	}

	sort.Strings(order)
	out := make([]ProductMetrics, 0, len(order))
	for _, sku := range order {
		acc := groups[sku]
		m := acc.metrics
		m.AvgQuantity = m.TotalQuantity / float64(acc.lines)
		m.AvgRevenue = m.TotalRevenue / float64(acc.lines)
		if acc.scoreCount > 0 {
			m.DemandScore = acc.scoreSum / float64(acc.scoreCount)
		} else {
			m.DemandScore = defaultScore
		}
		out = append(out, m)
	}
	return out
}
