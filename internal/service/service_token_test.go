// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-book-catalog/internal/config"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenSvc(t *testing.T, now time.Time) *tokenService {
	t.Helper()
	svc, err := NewTokenService(config.App{
		TokenSignKey:  "test-sign-key",
		TokenIssuer:   "go-book-catalog",
		TokenDuration: time.Hour,
	}, logger.Nop())
	require.NoError(t, err)

	ts := svc.(*tokenService)
	ts.now = func() time.Time { return now }
	return ts
}

func TestNewTokenService_EmptyKey(t *testing.T) {
	svc, err := NewTokenService(config.App{TokenDuration: time.Hour}, logger.Nop())
	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrNoTokenSignKey)
}

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := newTestTokenSvc(t, fixedNow)
	ctx := context.Background()

	token, err := svc.Issue(ctx, models.User{ID: 42, Username: "alice"})
	require.NoError(t, err)
	assert.NotEmpty(t, token.SignedString)
	assert.Equal(t, fixedNow.Add(time.Hour), token.ExpiresAt)

	claims, err := svc.Verify(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "go-book-catalog", claims.Issuer)
}

func TestTokenService_Verify_Expiry(t *testing.T) {
	svc := newTestTokenSvc(t, fixedNow)
	ctx := context.Background()

	token, err := svc.Issue(ctx, models.User{ID: 1, Username: "alice"})
	require.NoError(t, err)

	svc.now = func() time.Time { return fixedNow.Add(59 * time.Minute) }
	_, err = svc.Verify(ctx, token.SignedString)
	assert.NoError(t, err, "token is valid just before expiry")

	svc.now = func() time.Time { return fixedNow.Add(time.Hour + time.Second) }
	_, err = svc.Verify(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestTokenService_Verify_Rejects(t *testing.T) {
	svc := newTestTokenSvc(t, fixedNow)
	ctx := context.Background()

	other := newTestTokenSvc(t, fixedNow)
	other.tokenSignKey = "another-key"
	foreign, err := other.Issue(ctx, models.User{ID: 1})
	require.NoError(t, err)

	wrongIssuer := newTestTokenSvc(t, fixedNow)
	wrongIssuer.tokenIssuer = "someone-else"
	misissued, err := wrongIssuer.Issue(ctx, models.User{ID: 1})
	require.NoError(t, err)

	noneAlg, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  1,
		"iss": "go-book-catalog",
		"exp": fixedNow.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	for name, tokenString := range map[string]string{
		"garbage":      "not-a-token",
		"empty":        "",
		"foreign key":  foreign.SignedString,
		"wrong issuer": misissued.SignedString,
		"alg none":     noneAlg,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.Verify(ctx, tokenString)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}

func TestTokenService_Issue_InvalidUser(t *testing.T) {
	svc := newTestTokenSvc(t, fixedNow)

	_, err := svc.Issue(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}
