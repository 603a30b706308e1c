// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-book-catalog/models"
)

// Status sentinels an *APIError unwraps to.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrServiceUnavailable  = errors.New("service unavailable")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

// ErrInvalidAddress is returned by NewHTTPServerAdapter for an unusable
// server address.
var ErrInvalidAddress = errors.New("invalid server address")

// APIError is a non-2xx answer from the catalog server.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []models.FieldError

	kind error
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%d)", e.kind, e.StatusCode)
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	for _, f := range e.Fields {
		fmt.Fprintf(&b, "; %s: %s", f.Field, f.Message)
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.kind
}
