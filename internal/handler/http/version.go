// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-book-catalog/internal/app"
	"github.com/MKhiriev/go-book-catalog/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) error {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	_, err := w.Write([]byte(serverVersion))
	return err
}

// health answers 200 while the database responds and 503 otherwise.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) error {
	if err := h.services.HealthService.Check(r.Context()); err != nil {
		h.writeJSON(w, r, models.HealthResponse{Status: app.MsgServiceUnavailable}, http.StatusServiceUnavailable)
		return nil
	}

	h.writeJSON(w, r, models.HealthResponse{Status: "ok"}, http.StatusOK)
	return nil
}

func (h *Handler) notFound(_ http.ResponseWriter, _ *http.Request) error {
	return ErrRouteNotFound
}

func (h *Handler) methodNotAllowed(_ http.ResponseWriter, _ *http.Request) error {
	return ErrMethodNotAllowed
}
