// SoftEng IMS - Inventory Analytics and Restocking Recommendations
// Copyright 2026 Jomer Mandap (jomermandap)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/jomermandap/softeng-ims

// Package api provides the HTTP surface of the insights service: the
// two analytics endpoints, health checks, and shared response handling.
package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/jomermandap/softeng-ims/internal/logging"
)

// APIError is the error payload returned on request failure.
type APIError struct {
	// Code is a machine-readable error code.
	Code string `json:"code"`

	// Message is a human-readable error message.
	Message string `json:"message"`

	// RequestID is the request ID for tracing.
	RequestID string `json:"request_id,omitempty"`
}

// errorEnvelope wraps APIError for the wire. Successful responses are
// written as bare JSON payloads; only failures carry the envelope.
type errorEnvelope struct {
	Success bool      `json:"success"`
	Error   *APIError `json:"error"`
}

// Error codes for API responses.
const (
	ErrCodeValidationFailed    = "VALIDATION_FAILED"
	ErrCodeCatalogLookupFailed = "CATALOG_LOOKUP_FAILED"
	ErrCodeModelFitFailed      = "MODEL_FIT_FAILED"
	ErrCodeStoreError          = "STORE_ERROR"
	ErrCodeInternalError       = "INTERNAL_ERROR"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeMethodNotAllowed    = "METHOD_NOT_ALLOWED"
)

// WriteJSON writes payload as a bare JSON body with the given status.
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger := logging.Ctx(r.Context())
		logger.Err(err).Msg("failed to encode response")
	}
}

// WriteError writes the standard error envelope with the given status
// and code, attaching the request ID from the context when present.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	apiErr := &APIError{Code: code, Message: message}
	if id, ok := logging.RequestIDFromContext(r.Context()); ok {
		apiErr.RequestID = id
	}
	WriteJSON(w, r, status, errorEnvelope{Success: false, Error: apiErr})
}
