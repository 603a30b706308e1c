// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"

	"github.com/MKhiriev/go-book-catalog/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the auth middleware stores the
// verified [models.Claims] of the caller.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying claims.
func WithIdentity(ctx context.Context, claims models.Claims) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, claims)
}

// IdentityFromContext retrieves the caller identity stored by WithIdentity.
//
// ok is false when the value is missing or has an unexpected type.
func IdentityFromContext(ctx context.Context) (models.Claims, bool) {
	claims, ok := ctx.Value(IdentityCtxKey).(models.Claims)
	return claims, ok
}

// GetUserIDFromContext retrieves the caller's user id.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	claims, ok := IdentityFromContext(ctx)
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
