// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the thin HTTP layer: request decoding, calls
// into the services, and JSON response writing.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"blogapi/internal/service"
)

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

// respondJSON writes v as a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

// respondError maps a service error onto an HTTP status code: ErrNotFound
// becomes 404, ErrInvalidArgument 400, anything else 500. Store failures
// are logged but never leaked to the client.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		respondJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrInvalidArgument):
		respondJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	default:
		slog.Error("request failed", "error", err)
		respondJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
	}
}
