// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

// Command seed loads a JSON dataset into the service's data store.
//
// The input file holds the three record sets the analytics pipeline
// consumes:
//
//	{
//	  "products": [{"sku": "A", "name": "...", ...}],
//	  "bills": [{"billNumber": 1, "productSku": "A", ...}],
//	  "market_demand": [{"product_sku": "A", "market_demand_score": 80}]
//	}
//
// Records failing schema validation abort the run before anything is
// written.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/jomermandap/softeng-ims/internal/logging"
	"github.com/jomermandap/softeng-ims/internal/models"
	"github.com/jomermandap/softeng-ims/internal/store"
	"github.com/jomermandap/softeng-ims/internal/validation"
)

type dataset struct {
	Products     []models.Product            `json:"products"`
	Bills        []models.BillLineItem       `json:"bills"`
	MarketDemand []models.MarketDemandSignal `json:"market_demand"`
}

func main() {
	storePath := flag.String("store", "/data/ims.pebble", "pebble database directory")
	filePath := flag.String("file", "", "JSON dataset file to load (required)")
	logLevel := flag.String("log-level", "info", "log level")
	flag.Parse()

	logging.Init(logging.Config{Level: *logLevel, Format: "console"})

	if *filePath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(*storePath, *filePath); err != nil {
		logging.Fatal().Err(err).Msg("seed failed")
	}
}

func run(storePath, filePath string) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("read dataset: %w", err)
	}

	var ds dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return fmt.Errorf("parse dataset: %w", err)
	}

	if err := validate(&ds); err != nil {
		return err
	}

	db, err := store.NewPebbleStore(storePath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	for _, p := range ds.Products {
		if err := db.PutProduct(ctx, p); err != nil {
			return fmt.Errorf("write product %s: %w", p.SKU, err)
		}
	}
	for _, line := range ds.Bills {
		if err := db.PutBillLine(ctx, line); err != nil {
			return fmt.Errorf("write bill line (bill %d, sku %s): %w", line.BillNumber, line.ProductSKU, err)
		}
	}
	for _, sig := range ds.MarketDemand {
		if err := db.PutDemandSignal(ctx, sig); err != nil {
			return fmt.Errorf("write demand signal %s: %w", sig.ProductSKU, err)
		}
	}

	logging.Info().
		Int("products", len(ds.Products)).
		Int("bills", len(ds.Bills)).
		Int("demand_signals", len(ds.MarketDemand)).
		Msg("dataset loaded")
	return nil
}

func validate(ds *dataset) error {
	for i, p := range ds.Products {
		if err := validation.Struct(p); err != nil {
			return fmt.Errorf("products[%d]: %w", i, err)
		}
	}
	for i, line := range ds.Bills {
		if err := validation.Struct(line); err != nil {
			return fmt.Errorf("bills[%d]: %w", i, err)
		}
	}
	for i, sig := range ds.MarketDemand {
		if err := validation.Struct(sig); err != nil {
			return fmt.Errorf("market_demand[%d]: %w", i, err)
		}
	}
	return nil
}
