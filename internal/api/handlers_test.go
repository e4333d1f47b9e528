// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"github.com/jomermandap/softeng-ims/internal/models"
	"github.com/jomermandap/softeng-ims/internal/recommend"
	"github.com/jomermandap/softeng-ims/internal/store"
)

// stubEngine returns canned results or errors.
type stubEngine struct {
	recs    []models.Recommendation
	bundles []models.Bundle
	err     error
}

func (s *stubEngine) Recommendations(context.Context) ([]models.Recommendation, error) {
	return s.recs, s.err
}

func (s *stubEngine) Bundles(context.Context) ([]models.Bundle, error) {
	return s.bundles, s.err
}

func newTestServer(engine AnalyticsEngine) http.Handler {
	router := NewRouter(NewHandler(engine, store.NewMemoryStore()), NewMiddleware(nil))
	return router.Setup()
}

func doGet(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestInventoryRecommendations(t *testing.T) {
	engine := &stubEngine{recs: []models.Recommendation{
		{SKU: "B", Name: "Gadget", RiskLevel: "MEDIUM", RecommendedStock: 6, MarketDemandScore: 50},
		{SKU: "A", Name: "Widget", RiskLevel: "HIGH", RecommendedStock: 15, MarketDemandScore: 50},
	}}

	rec := doGet(t, newTestServer(engine), "/inventory-recommendations")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type: got %q", ct)
	}

	// The success body is a bare JSON array, no envelope.
	body := strings.TrimSpace(rec.Body.String())
	if !strings.HasPrefix(body, "[") {
		t.Fatalf("expected bare array body, got %q", body)
	}

	var got []models.Recommendation
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 2 || got[0].SKU != "B" || got[1].SKU != "A" {
		t.Errorf("order not preserved: %+v", got)
	}
}

func TestInventoryRecommendationsEmpty(t *testing.T) {
	engine := &stubEngine{recs: []models.Recommendation{}}

	rec := doGet(t, newTestServer(engine), "/inventory-recommendations")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	if body := strings.TrimSpace(rec.Body.String()); body != "[]" {
		t.Errorf("expected empty array body, got %q", body)
	}
}

func TestProductBundles(t *testing.T) {
	engine := &stubEngine{bundles: []models.Bundle{
		{
			Products:          [2]models.BundleProduct{{SKU: "A", Name: "Widget"}, {SKU: "B", Name: "Gadget"}},
			Support:           0.5,
			Confidence:        1.0,
			BundlePrice:       30,
			SuggestedDiscount: 0.1,
		},
	}}

	rec := doGet(t, newTestServer(engine), "/product-bundles")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}

	var got []models.Bundle
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got) != 1 || got[0].Support != 0.5 || got[0].Confidence != 1.0 {
		t.Errorf("unexpected bundles: %+v", got)
	}
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode string
	}{
		{"model fit", fmt.Errorf("%w: too few products", recommend.ErrModelFit), ErrCodeModelFitFailed},
		{"catalog lookup", &recommend.CatalogLookupError{SKU: "GHOST"}, ErrCodeCatalogLookupFailed},
		{"store closed", fmt.Errorf("fetch bills: %w", store.ErrClosed), ErrCodeStoreError},
		{"unknown", fmt.Errorf("boom"), ErrCodeInternalError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, newTestServer(&stubEngine{err: tt.err}), "/inventory-recommendations")
			if rec.Code != http.StatusInternalServerError {
				t.Fatalf("status: got %d, want 500", rec.Code)
			}

			var envelope struct {
				Success bool      `json:"success"`
				Error   *APIError `json:"error"`
			}
			if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if envelope.Success {
				t.Error("expected success=false")
			}
			if envelope.Error == nil || envelope.Error.Code != tt.wantCode {
				t.Errorf("error code: got %+v, want %s", envelope.Error, tt.wantCode)
			}
			if envelope.Error != nil && envelope.Error.RequestID == "" {
				t.Error("expected request_id in error payload")
			}
		})
	}
}

func TestHealthEndpoints(t *testing.T) {
	h := newTestServer(&stubEngine{})

	for _, path := range []string{"/api/v1/health/live", "/api/v1/health/ready"} {
		rec := doGet(t, h, path)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: got %d, want 200", path, rec.Code)
		}
	}
}

func TestHealthReadyUnavailable(t *testing.T) {
	closed := store.NewMemoryStore()
	_ = closed.Close()
	router := NewRouter(NewHandler(&stubEngine{}, closed), NewMiddleware(nil))

	rec := doGet(t, router.Setup(), "/api/v1/health/ready")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status: got %d, want 503", rec.Code)
	}
}

func TestNotFound(t *testing.T) {
	rec := doGet(t, newTestServer(&stubEngine{}), "/nope")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: got %d, want 404", rec.Code)
	}
	var envelope struct {
		Success bool      `json:"success"`
		Error   *APIError `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Error == nil || envelope.Error.Code != ErrCodeNotFound {
		t.Errorf("unexpected envelope: %+v", envelope)
	}
}

func TestSecurityHeaders(t *testing.T) {
	rec := doGet(t, newTestServer(&stubEngine{recs: []models.Recommendation{}}), "/inventory-recommendations")
	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Errorf("X-Content-Type-Options: got %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Errorf("X-Frame-Options: got %q", got)
	}
}
