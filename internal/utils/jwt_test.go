// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/golang-jwt/jwt/v5"
)

const (
	testSignKey = "secret-key"
	testIssuer  = "test-issuer"
)

var testUser = models.User{ID: 123, Username: "alice"}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateJWTToken_Success(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	token, err := GenerateJWTToken(testUser, testIssuer, now, time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if token.SignedString == "" {
		t.Fatal("expected non-empty SignedString")
	}
	if !token.ExpiresAt.Equal(now.Add(time.Hour)) {
		t.Errorf("expected expiry %v, got %v", now.Add(time.Hour), token.ExpiresAt)
	}

	claims, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, fixedClock(now.Add(time.Minute)))
	if err != nil {
		t.Fatalf("expected valid token, got: %v", err)
	}
	if claims.UserID != 123 || claims.Username != "alice" {
		t.Errorf("unexpected claims: %+v", claims)
	}
	if claims.Issuer != testIssuer {
		t.Errorf("expected issuer %q, got %q", testIssuer, claims.Issuer)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name     string
		user     models.User
		duration time.Duration
		key      string
	}{
		{"no user id", models.User{Username: "x"}, time.Hour, testSignKey},
		{"zero duration", testUser, 0, testSignKey},
		{"empty key", testUser, time.Hour, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateJWTToken(tt.user, testIssuer, now, tt.duration, tt.key)
			if !errors.Is(err, ErrInvalidJWTParams) {
				t.Errorf("expected ErrInvalidJWTParams, got: %v", err)
			}
		})
	}
}

func TestValidateAndParseJWTToken_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	token, _ := GenerateJWTToken(testUser, testIssuer, now, time.Hour, testSignKey)

	if _, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, fixedClock(now.Add(59*time.Minute))); err != nil {
		t.Errorf("expected token valid at 59m, got: %v", err)
	}

	_, err := ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer, fixedClock(now.Add(61*time.Minute)))
	if !errors.Is(err, jwt.ErrTokenExpired) {
		t.Errorf("expected ErrTokenExpired at 61m, got: %v", err)
	}
}

func TestValidateAndParseJWTToken_Rejections(t *testing.T) {
	now := time.Now()
	valid, _ := GenerateJWTToken(testUser, testIssuer, now, time.Hour, testSignKey)

	noExp, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID:           1,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer},
	}).SignedString([]byte(testSignKey))

	noSubject, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer, ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}).SignedString([]byte(testSignKey))

	hs512, _ := jwt.NewWithClaims(jwt.SigningMethodHS512, &models.Claims{
		UserID:           1,
		RegisteredClaims: jwt.RegisteredClaims{Issuer: testIssuer, ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))},
	}).SignedString([]byte(testSignKey))

	tests := []struct {
		name   string
		token  string
		key    string
		issuer string
	}{
		{"wrong key", valid.SignedString, "other-key", testIssuer},
		{"wrong issuer", valid.SignedString, testSignKey, "someone-else"},
		{"garbage", "not.a.token", testSignKey, testIssuer},
		{"empty", "", testSignKey, testIssuer},
		{"tampered", valid.SignedString + "x", testSignKey, testIssuer},
		{"missing exp", noExp, testSignKey, testIssuer},
		{"missing user id", noSubject, testSignKey, testIssuer},
		{"unexpected algorithm", hs512, testSignKey, testIssuer},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ValidateAndParseJWTToken(tt.token, tt.key, tt.issuer, nil); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseBearerToken(t *testing.T) {
	tests := []struct {
		header  string
		want    string
		wantErr bool
	}{
		{header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{header: "bearer abc", want: "abc"},
		{header: "  Bearer   abc  ", want: "abc"},
		{header: "Bearer", wantErr: true},
		{header: "Bearer ", wantErr: true},
		{header: "", wantErr: true},
		{header: "Basic dXNlcjpwYXNz", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			got, err := ParseBearerToken(tt.header)
			if tt.wantErr {
				if !errors.Is(err, ErrNoBearerToken) {
					t.Errorf("expected ErrNoBearerToken, got: %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("expected %q, got %q (err=%v)", tt.want, got, err)
			}
		})
	}
}
