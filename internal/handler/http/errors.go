// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header is present but does not carry a bearer token.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// expected scheme prefix but the token value itself is missing.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request and routing errors.
var (
	ErrInvalidJSON     = errors.New("invalid JSON was passed")
	ErrInvalidGzipBody = errors.New("invalid gzip data")
	ErrInvalidID       = errors.New("invalid id in path")

	ErrRouteNotFound    = errors.New("route not found")
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrPanic wraps a value recovered from a panicking handler.
	ErrPanic = errors.New("panic recovered")
)
