// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
)

// recoverer turns a panic further down the chain into a 500 written by
// renderError. http.ErrAbortHandler is re-raised so net/http can abort the
// connection.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromRequest(r).Error().
				Interface("panic", rec).
				Bytes("stack", debug.Stack()).
				Msg("handler panicked")

			h.renderError(w, r, fmt.Errorf("%w: %v", ErrPanic, rec))
		}()

		next.ServeHTTP(w, r)
	})
}
