// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package recommend

import (
	"github.com/jomermandap/softeng-ims/internal/models"
)

// Fuse inner-joins bill lines to the product catalog on SKU, then
// left-joins market demand signals. Bill lines referencing a SKU absent
// from the catalog are dropped and counted in the result diagnostics.
// The demand join is skipped entirely when no signals exist, leaving
// every record's DemandScore nil.
func Fuse(bills []models.BillLineItem, products []models.Product, demand []models.MarketDemandSignal) FusionResult {
	if len(bills) == 0 || len(products) == 0 {
		return FusionResult{}
	}

	catalog := make(map[string]models.Product, len(products))
	for _, p := range products {
		catalog[p.SKU] = p
	}

	var scores map[string]float64
	if len(demand) > 0 {
		scores = make(map[string]float64, len(demand))
		for _, sig := range demand {
			scores[sig.ProductSKU] = sig.Score
		}
	}

	result := FusionResult{Records: make([]FusedRecord, 0, len(bills))}
	for _, line := range bills {
		p, ok := catalog[line.ProductSKU]
		if !ok {
			result.DroppedLines++
			continue
		}

		rec := FusedRecord{
			BillNumber:        line.BillNumber,
			SKU:               line.ProductSKU,
			Quantity:          line.Quantity,
			TotalAmount:       line.TotalAmount,
			Name:              p.Name,
			Category:          p.Category,
			Stock:             p.Stock,
			LowStockThreshold: p.LowStockThreshold,
			Price:             p.Price,
		}
		if scores != nil {
			if score, ok := scores[line.ProductSKU]; ok {
				rec.DemandScore = &score
			}
		}
		result.Records = append(result.Records, rec)
	}
	return result
}
