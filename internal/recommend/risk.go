// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package recommend

// ClassifyRisk maps a product's stock position to a restock-urgency
// label. The ratio of current stock to recommended stock drives the
// urgent labels; a high market demand score upgrades an otherwise
// healthy position to LOW-WATCH.
func ClassifyRisk(currentStock, recommendedStock int, demandScore float64) string {
	var ratio float64
	if recommendedStock > 0 {
		ratio = float64(currentStock) / float64(recommendedStock)
	}

	switch {
	case ratio < 0.3:
		return RiskHigh
	case ratio < 0.6:
		return RiskMedium
	case demandScore > 70:
		return RiskLowWatch
	default:
		return RiskLow
	}
}
