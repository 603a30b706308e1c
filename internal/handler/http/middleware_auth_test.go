// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-book-catalog/internal/service"
	"github.com/MKhiriev/go-book-catalog/internal/utils"
	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid bearer", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "extra spaces", header: "Bearer    abc", wantToken: "abc"},
		{name: "scheme only", header: "Bearer", wantErr: ErrEmptyToken},
		{name: "scheme with trailing space", header: "Bearer ", wantErr: ErrEmptyToken},
		{name: "basic scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "token without scheme", header: "abc.def.ghi", wantErr: ErrInvalidAuthorizationHeader},
		{name: "whitespace only", header: "   ", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuth_Statuses(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantNext   bool
	}{
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "bare scheme", header: "Bearer", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Token " + validToken, wantStatus: http.StatusUnauthorized},
		{name: "invalid token", header: "Bearer nope", wantStatus: http.StatusForbidden},
		{name: "valid token", header: "Bearer " + validToken, wantStatus: http.StatusOK, wantNext: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, nil)
			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/authors", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.auth(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
		})
	}
}

func TestAuth_PutsIdentityIntoContext(t *testing.T) {
	h := newTestHandler(t, nil)

	var identity models.Claims
	var found bool
	next := http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		identity, found = utils.IdentityFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+validToken)
	h.auth(next).ServeHTTP(httptest.NewRecorder(), req)

	require.True(t, found)
	assert.EqualValues(t, 1, identity.UserID)
	assert.Equal(t, "alice", identity.Username)
}

func TestAuth_PassesRawTokenToVerifier(t *testing.T) {
	var verified string
	h := newTestHandler(t, &service.Services{
		TokenService: &mockTokenService{
			verifyFn: func(_ context.Context, tokenString string) (models.Claims, error) {
				verified = tokenString
				return models.Claims{}, service.ErrTokenIsExpiredOrInvalid
			},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "BEARER header.payload.sig")
	rec := httptest.NewRecorder()
	h.auth(http.NotFoundHandler()).ServeHTTP(rec, req)

	assert.Equal(t, "header.payload.sig", verified)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
