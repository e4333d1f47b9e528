// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

// Package recommend computes inventory restocking recommendations and
// frequently-co-purchased product bundles from three datasets: bill
// line items, the product catalog, and market demand signals.
//
// The pipeline fuses the datasets into joined records, then feeds two
// independent branches:
//
//   - fuse -> aggregate -> forecast -> classify, producing one
//     Recommendation per SKU with sales activity;
//   - fuse -> mine, producing co-purchase Bundles.
//
// Every run is self-contained: the model is retrained from the current
// data on each call and nothing is cached across calls. With a fixed
// seed, identical inputs produce identical outputs, ordering included.
package recommend
