// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jomermandap/softeng-ims/internal/logging"
	"github.com/jomermandap/softeng-ims/internal/models"
	"github.com/jomermandap/softeng-ims/internal/recommend"
	"github.com/jomermandap/softeng-ims/internal/store"
)

// AnalyticsEngine is the slice of the recommendation engine the
// handlers depend on.
type AnalyticsEngine interface {
	Recommendations(ctx context.Context) ([]models.Recommendation, error)
	Bundles(ctx context.Context) ([]models.Bundle, error)
}

// Handler serves the analytics and health endpoints.
type Handler struct {
	engine AnalyticsEngine
	source recommend.DataSource
}

// NewHandler creates a Handler backed by engine; source is probed by
// the readiness check.
func NewHandler(engine AnalyticsEngine, source recommend.DataSource) *Handler {
	return &Handler{engine: engine, source: source}
}

// InventoryRecommendations handles GET /inventory-recommendations.
// The response body is a JSON array of recommendations ordered by risk
// label descending; empty data yields an empty array.
func (h *Handler) InventoryRecommendations(w http.ResponseWriter, r *http.Request) {
	recs, err := h.engine.Recommendations(r.Context())
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	WriteJSON(w, r, http.StatusOK, recs)
}

// ProductBundles handles GET /product-bundles. The response body is a
// JSON array of bundles ordered by confidence descending.
func (h *Handler) ProductBundles(w http.ResponseWriter, r *http.Request) {
	bundles, err := h.engine.Bundles(r.Context())
	if err != nil {
		h.writeEngineError(w, r, err)
		return
	}
	WriteJSON(w, r, http.StatusOK, bundles)
}

// HealthLive handles GET /api/v1/health/live.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

// HealthReady handles GET /api/v1/health/ready. Readiness requires the
// data store to answer a catalog query.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.source.Products(ctx); err != nil {
		logger := logging.Ctx(r.Context())
		logger.Err(err).Msg("readiness probe failed")
		WriteJSON(w, r, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
		})
		return
	}
	WriteJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) writeEngineError(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.Ctx(r.Context())
	logger.Err(err).Msg("analytics request failed")

	var lookupErr *recommend.CatalogLookupError
	switch {
	case errors.As(err, &lookupErr):
		WriteError(w, r, http.StatusInternalServerError, ErrCodeCatalogLookupFailed, err.Error())
	case errors.Is(err, recommend.ErrModelFit):
		WriteError(w, r, http.StatusInternalServerError, ErrCodeModelFitFailed, err.Error())
	case errors.Is(err, store.ErrClosed):
		WriteError(w, r, http.StatusInternalServerError, ErrCodeStoreError, err.Error())
	default:
		WriteError(w, r, http.StatusInternalServerError, ErrCodeInternalError, err.Error())
	}
}
