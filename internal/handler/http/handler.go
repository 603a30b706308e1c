// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/service"
)

// Settings tune the HTTP transport.
type Settings struct {
	// ExposeInternalErrors puts the raw error text into 500 responses.
	ExposeInternalErrors bool

	// RequestTimeout bounds every request when positive.
	RequestTimeout time.Duration

	// AllowedOrigins lists CORS origins; empty allows any origin.
	AllowedOrigins []string
}

type Handler struct {
	services *service.Services
	settings Settings

	logger *logger.Logger
}

func NewHandler(services *service.Services, settings Settings, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		settings: settings,
		logger:   logger,
	}
}

// apiFunc is an HTTP handler that reports failures by returning them.
type apiFunc func(w http.ResponseWriter, r *http.Request) error

// handle adapts fn to http.HandlerFunc, sending any returned error to
// renderError.
func (h *Handler) handle(fn apiFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := fn(w, r); err != nil {
			h.renderError(w, r, err)
		}
	}
}
