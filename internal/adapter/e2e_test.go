// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-book-catalog/internal/config"
	"github.com/MKhiriev/go-book-catalog/internal/handler"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/service"
	"github.com/MKhiriev/go-book-catalog/internal/store"
	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startCatalog runs the full server stack on an in-memory SQLite database
// and returns an adapter pointed at it.
func startCatalog(t *testing.T) ServerAdapter {
	t.Helper()

	ctx := context.Background()
	log := logger.Nop()
	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey:     "e2e-secret",
			TokenIssuer:      "go-book-catalog",
			TokenDuration:    time.Hour,
			PasswordHashCost: 4,
			Version:          "e2e",
		},
		Storage: config.Storage{DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}},
		Server:  config.Server{HTTPAddress: "in-process"},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, cfg, log)
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, cfg, log)
	require.NoError(t, err)

	srv := httptest.NewServer(handlers.HTTP.Init())
	t.Cleanup(srv.Close)

	a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: srv.URL, RequestTimeout: 5 * time.Second}, log)
	require.NoError(t, err)

	return a
}

func TestCatalogEndToEnd(t *testing.T) {
	a := startCatalog(t)
	ctx := context.Background()

	version, err := a.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e2e", version)
	require.NoError(t, a.Health(ctx))

	// anonymous catalog access
	_, err = a.ListAuthors(ctx)
	require.ErrorIs(t, err, ErrUnauthorized)

	creds := models.Credentials{Username: "alice", Password: "secret1"}
	user, err := a.Register(ctx, creds)
	require.NoError(t, err)
	assert.Positive(t, user.ID)

	_, err = a.Register(ctx, creds)
	require.ErrorIs(t, err, ErrBadRequest, "duplicate username")

	_, err = a.Register(ctx, models.Credentials{Username: "bob", Password: strings.Repeat("p", 80)})
	var tooLong *APIError
	require.ErrorAs(t, err, &tooLong)
	assert.Equal(t, http.StatusBadRequest, tooLong.StatusCode)
	assert.Equal(t, []models.FieldError{{Field: "password", Message: "Password must be at most 72 bytes"}}, tooLong.Fields)

	_, err = a.Login(ctx, models.Credentials{Username: "alice", Password: "wrong-password"})
	require.ErrorIs(t, err, ErrBadRequest)

	token, err := a.Login(ctx, creds)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	// dateOfBirth is required on create
	_, err = a.CreateAuthor(ctx, models.Author{Name: "J.R.R. Tolkien"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.ErrorIs(t, err, ErrBadRequest)
	require.Len(t, apiErr.Fields, 1)
	assert.Equal(t, "dateOfBirth", apiErr.Fields[0].Field)

	born := models.NewDate(1892, time.January, 3)
	author, err := a.CreateAuthor(ctx, models.Author{Name: "J.R.R. Tolkien", DateOfBirth: &born})
	require.NoError(t, err)
	require.Positive(t, author.ID)
	assert.Equal(t, "1892-01-03", author.DateOfBirth.String())

	bio := "Philologist"
	author, err = a.UpdateAuthor(ctx, author.ID, models.AuthorPatch{Biography: &bio})
	require.NoError(t, err)
	require.NotNil(t, author.Biography)
	assert.Equal(t, bio, *author.Biography)
	assert.Equal(t, "J.R.R. Tolkien", author.Name)

	missing := int64(9999)
	_, err = a.CreateBook(ctx, models.Book{Title: "The Hobbit", ISBN: "978-0-261-10221-7", AuthorID: &missing})
	require.ErrorIs(t, err, ErrNotFound)

	book, err := a.CreateBook(ctx, models.Book{Title: "The Hobbit", ISBN: "978-0-261-10221-7", AuthorID: &author.ID})
	require.NoError(t, err)
	require.NotNil(t, book.AuthorID)
	assert.Equal(t, author.ID, *book.AuthorID)

	title := "The Hobbit, or There and Back Again"
	book, err = a.UpdateBook(ctx, book.ID, models.BookPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, title, book.Title)

	_, err = a.UpdateBook(ctx, book.ID, models.BookPatch{AuthorID: &missing})
	require.ErrorIs(t, err, ErrNotFound)

	books, err := a.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)

	// deleting the author keeps the book and clears its author reference
	require.NoError(t, a.DeleteAuthor(ctx, author.ID))
	require.ErrorIs(t, a.DeleteAuthor(ctx, author.ID), ErrNotFound)

	books, err = a.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Nil(t, books[0].AuthorID)

	require.NoError(t, a.DeleteBook(ctx, book.ID))
	books, err = a.ListBooks(ctx)
	require.NoError(t, err)
	assert.Empty(t, books)

	a.SetToken("not-a-jwt")
	_, err = a.ListBooks(ctx)
	assert.ErrorIs(t, err, ErrForbidden)
}
