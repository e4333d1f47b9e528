// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package recommend

import (
	"sort"

	"github.com/jomermandap/softeng-ims/internal/models"
)

// BundleConfig tunes the co-purchase bundle miner.
type BundleConfig struct {
	// MinSupport is the minimum fraction of transactions a pair must
	// appear in.
	MinSupport float64

	// MinConfidence is the minimum directional confidence of a pair.
	MinConfidence float64

	// Discount is the suggested discount emitted on every bundle.
	Discount float64
}

type pairKey struct {
	a, b string // canonical: a < b
}

// MineBundles finds product pairs frequently purchased together. Each
// bill number forms one transaction; pairs are enumerated over line
// positions within the transaction, so duplicate lines for a SKU
// contribute extra pair counts. Support is the pair's share of all
// transactions; confidence is the larger of the two directional
// co-occurrence rates.
//
// Bundle prices come from the product catalog. A mined pair whose SKU
// is missing from products yields a CatalogLookupError.
func MineBundles(records []FusedRecord, products []models.Product, cfg BundleConfig) ([]models.Bundle, error) {
	if len(records) == 0 {
		return nil, nil
	}

	// Transactions keep line order within each bill.
	transactions := make(map[int][]string)
	var billOrder []int
	for _, rec := range records {
		if _, ok := transactions[rec.BillNumber]; !ok {
			billOrder = append(billOrder, rec.BillNumber)
		}
		transactions[rec.BillNumber] = append(transactions[rec.BillNumber], rec.SKU)
	}

	pairCounts := make(map[pairKey]int)
	productTx := make(map[string]int)
	for _, bill := range billOrder {
		skus := transactions[bill]

		seen := make(map[string]bool, len(skus))
		for _, sku := range skus {
			if !seen[sku] {
				seen[sku] = true
				productTx[sku]++
			}
		}

		for i := 0; i < len(skus); i++ {
			for j := i + 1; j < len(skus); j++ {
				if skus[i] == skus[j] {
					continue
				}
				key := pairKey{a: skus[i], b: skus[j]}
				if key.a > key.b {
					key.a, key.b = key.b, key.a
				}
				pairCounts[key]++
			}
		}
	}

	catalog := make(map[string]models.Product, len(products))
	for _, p := range products {
		catalog[p.SKU] = p
	}

	keys := make([]pairKey, 0, len(pairCounts))
	for key := range pairCounts {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].a != keys[j].a {
			return keys[i].a < keys[j].a
		}
		return keys[i].b < keys[j].b
	})

	totalTx := float64(len(transactions))
	bundles := make([]models.Bundle, 0)
	for _, key := range keys {
		count := float64(pairCounts[key])
		support := count / totalTx
		confA := count / float64(productTx[key.a])
		confB := count / float64(productTx[key.b])
		confidence := confA
		if confB > confidence {
			confidence = confB
		}

		if support < cfg.MinSupport || confidence < cfg.MinConfidence {
			continue
		}

		pa, ok := catalog[key.a]
		if !ok {
			return nil, &CatalogLookupError{SKU: key.a}
		}
		pb, ok := catalog[key.b]
		if !ok {
			return nil, &CatalogLookupError{SKU: key.b}
		}

		bundles = append(bundles, models.Bundle{
			Products: [2]models.BundleProduct{
				{SKU: pa.SKU, Name: pa.Name},
				{SKU: pb.SKU, Name: pb.Name},
			},
			Support:           support,
			Confidence:        confidence,
			BundlePrice:       pa.Price + pb.Price,
			SuggestedDiscount: cfg.Discount,
		})
	}

	// Confidence descending; the pre-sorted key order makes ties
	// deterministic under the stable sort.
	sort.SliceStable(bundles, func(i, j int) bool {
		return bundles[i].Confidence > bundles[j].Confidence
	})
	return bundles, nil
}
