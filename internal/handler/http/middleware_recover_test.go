// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestRecoverer_PanicBecomes500(t *testing.T) {
	h := newTestHandler(t, nil)
	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("nil map write")
	})

	rec := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		h.recoverer(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	})

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "internal server error", decodeErrorResponse(t, rec).Message)
}

func TestRecoverer_ExposesPanicWhenConfigured(t *testing.T) {
	h := NewHandler(&service.Services{}, Settings{ExposeInternalErrors: true}, logger.Nop())
	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic("nil map write")
	})

	rec := httptest.NewRecorder()
	h.recoverer(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, decodeErrorResponse(t, rec).Message, "nil map write")
}

func TestRecoverer_ReraisesAbortHandler(t *testing.T) {
	h := newTestHandler(t, nil)
	next := http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		panic(http.ErrAbortHandler)
	})

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		h.recoverer(next).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRecoverer_NoPanicUntouched(t *testing.T) {
	h := newTestHandler(t, nil)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	h.recoverer(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
