// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the book catalog HTTP API.
//
// The primary abstraction is [ServerAdapter], which hides the REST details
// (paths, bearer header, JSON bodies) from callers such as cmd/client. The
// package ships an HTTP implementation built on resty
// ([NewHTTPServerAdapter]).
//
// Non-2xx responses are turned into an *[APIError] by mapHTTPError. It
// unwraps to a status sentinel so that callers can use [errors.Is] (e.g.
// [ErrNotFound] for 404, [ErrUnauthorized] for 401) and still read the
// server's message and per-field validation errors.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-book-catalog/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the catalog server.
// Implementations are responsible for serialisation, authentication header
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account and returns the public user record. It
	// does not log in.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)

	CreateAuthor(ctx context.Context, author models.Author) (models.Author, error)
	ListAuthors(ctx context.Context) ([]models.Author, error)
	UpdateAuthor(ctx context.Context, id int64, patch models.AuthorPatch) (models.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error

	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	ListBooks(ctx context.Context) ([]models.Book, error)
	UpdateBook(ctx context.Context, id int64, patch models.BookPatch) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) error

	// Version returns the server's version string.
	Version(ctx context.Context) (string, error)

	// Health returns nil when the server reports itself healthy.
	Health(ctx context.Context) error
}
