// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/jomermandap/softeng-ims/internal/models"
)

func TestStructValid(t *testing.T) {
	p := models.Product{SKU: "A", Name: "Widget", Stock: 5, LowStockThreshold: 2, Price: 10}
	if err := Struct(p); err != nil {
		t.Errorf("expected valid product, got %v", err)
	}
}

func TestStructReportsAllFields(t *testing.T) {
	line := models.BillLineItem{BillNumber: 0, ProductSKU: "", Quantity: -1}

	err := Struct(line)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if len(verr.Fields) != 3 {
		t.Errorf("expected 3 field errors, got %d: %v", len(verr.Fields), verr.Fields)
	}
	if !strings.Contains(verr.Error(), "required") {
		t.Errorf("message should mention required fields: %q", verr.Error())
	}
}

func TestStructRangeConstraints(t *testing.T) {
	sig := models.MarketDemandSignal{ProductSKU: "A", Score: 150}
	err := Struct(sig)
	if err == nil {
		t.Fatal("expected error for score above 100")
	}

	var verr *Error
	if !errors.As(err, &verr) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if verr.Fields[0].Tag != "lte" {
		t.Errorf("expected lte violation, got %+v", verr.Fields[0])
	}
}
