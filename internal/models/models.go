// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

// Package models defines the input entities supplied by the data store
// and the output entities returned by the insight endpoints.
//
// The three input entities (BillLineItem, Product, MarketDemandSignal)
// are immutable within this service: they are read in full per request,
// joined, aggregated, and discarded. Field names in the JSON tags match
// the upstream store documents exactly (billNumber/productSku on bills,
// product_sku/market_demand_score on demand signals) so records round-trip
// without a mapping layer.
package models

// BillLineItem is one line of a sales bill. A single bill may carry
// multiple lines; all lines sharing a BillNumber form one transaction.
type BillLineItem struct {
	BillNumber  int     `json:"billNumber" validate:"required,gt=0"`
	ProductSKU  string  `json:"productSku" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gte=0"`
	TotalAmount float64 `json:"totalAmount" validate:"gte=0"`
}

// Product is a catalog entry. Mutated elsewhere in the wider system;
// read-only here.
type Product struct {
	SKU               string  `json:"sku" validate:"required"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	Stock             int     `json:"stock" validate:"gte=0"`
	LowStockThreshold int     `json:"lowStockThreshold" validate:"gte=0"`
	Price             float64 `json:"price" validate:"gte=0"`
}

// MarketDemandSignal is an optional external demand score for a product.
// Zero or one signal per SKU; absence means the neutral default applies.
type MarketDemandSignal struct {
	ProductSKU string  `json:"product_sku" validate:"required"`
	Score      float64 `json:"market_demand_score" validate:"gte=0,lte=100"`
}

// Recommendation is one restocking recommendation. The list returned by
// GET /inventory-recommendations is ordered by RiskLevel, descending
// string order.
type Recommendation struct {
	SKU               string  `json:"sku"`
	Name              string  `json:"name"`
	Category          string  `json:"category"`
	CurrentStock      int     `json:"current_stock"`
	PredictedDemand   float64 `json:"predicted_demand"`
	RecommendedStock  int     `json:"recommended_stock"`
	RiskLevel         string  `json:"risk_level"`
	MarketDemandScore float64 `json:"market_demand_score"`
	Price             float64 `json:"price"`
}

// BundleProduct identifies one half of a product bundle.
type BundleProduct struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}

// Bundle is a frequently-co-purchased product pair. The list returned by
// GET /product-bundles is ordered by Confidence descending.
type Bundle struct {
	Products          [2]BundleProduct `json:"products"`
	Support           float64          `json:"support"`
	Confidence        float64          `json:"confidence"`
	BundlePrice       float64          `json:"bundle_price"`
	SuggestedDiscount float64          `json:"suggested_discount"`
}
