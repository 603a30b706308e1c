// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/golang-jwt/jwt/v5"
)

// Errors returned by the JWT helpers.
var (
	ErrInvalidJWTParams    = errors.New("invalid params for generating JWT token")
	ErrInvalidTokenSubject = errors.New("token does not identify a user")
	ErrNoBearerToken       = errors.New("no bearer token in authorization header")
)

// GenerateJWTToken signs an HS256 token for user that expires tokenDuration
// after now.
//
// issuer may be empty, in which case the "iss" claim is omitted.
func GenerateJWTToken(user models.User, issuer string, now time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if user.ID <= 0 || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, ErrInvalidJWTParams
	}

	expiresAt := now.Add(tokenDuration)
	claims := &models.Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{SignedString: tokenString, ExpiresAt: expiresAt.Truncate(time.Second)}, nil
}

// ValidateAndParseJWTToken verifies the signature, algorithm, expiry and
// issuer of tokenString and returns its claims.
//
// now supplies the verification clock; nil means time.Now. An empty issuer
// disables the issuer check.
func ValidateAndParseJWTToken(tokenString, signKey, issuer string, now func() time.Time) (models.Claims, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}
	if now != nil {
		opts = append(opts, jwt.WithTimeFunc(now))
	}

	var claims models.Claims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return models.Claims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	if claims.UserID <= 0 {
		return models.Claims{}, ErrInvalidTokenSubject
	}

	return claims, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value. The scheme is matched case-insensitively.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) < 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrNoBearerToken
	}

	return parts[1], nil
}
