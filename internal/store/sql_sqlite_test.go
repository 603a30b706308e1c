// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-book-catalog/internal/config"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	ctx := context.Background()

	db, err := NewConnect(ctx, config.DB{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate(ctx))

	s := newStoragesFromDB(db, logger.Nop())
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", sqliteDSN(":memory:"))
	assert.Equal(t, "file:c.db?cache=shared&_foreign_keys=on", sqliteDSN("file:c.db?cache=shared"))
	assert.Equal(t, "file:c.db?_fk=1", sqliteDSN("file:c.db?_fk=1"))
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "oracle"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestSQLite_UserUniqueness(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	now := time.Now().UTC()

	created, err := s.UserRepository.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	assert.Positive(t, created.ID)

	_, err = s.UserRepository.CreateUser(ctx, models.User{Username: "alice", PasswordHash: "h2", CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	found, err := s.UserRepository.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "h", found.PasswordHash)

	_, err = s.UserRepository.FindUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrNoUserWasFound)
}

func TestSQLite_AuthorBookLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	now := time.Now().UTC()
	dob := models.NewDate(1920, time.October, 8)

	author, err := s.AuthorRepository.CreateAuthor(ctx, models.Author{Name: "Frank Herbert", DateOfBirth: &dob, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	require.NotNil(t, author.DateOfBirth)
	assert.Equal(t, "1920-10-08", author.DateOfBirth.String())
	assert.Nil(t, author.Biography)

	book, err := s.BookRepository.CreateBook(ctx, models.Book{Title: "Dune", ISBN: "978-0441013593", AuthorID: &author.ID, CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	require.NotNil(t, book.AuthorID)
	assert.Equal(t, author.ID, *book.AuthorID)

	missing := int64(999)
	_, err = s.BookRepository.CreateBook(ctx, models.Book{Title: "x", ISBN: "y", AuthorID: &missing, CreatedAt: now, UpdatedAt: now})
	assert.ErrorIs(t, err, ErrAuthorReferenceNotFound)

	bio := "Author of Dune"
	updated, err := s.AuthorRepository.UpdateAuthor(ctx, author.ID, models.AuthorPatch{Biography: &bio}, now.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "Frank Herbert", updated.Name)
	require.NotNil(t, updated.Biography)
	assert.Equal(t, bio, *updated.Biography)

	_, err = s.BookRepository.UpdateBook(ctx, book.ID, models.BookPatch{AuthorID: &missing}, now)
	assert.ErrorIs(t, err, ErrAuthorReferenceNotFound)

	require.NoError(t, s.AuthorRepository.DeleteAuthor(ctx, author.ID))
	assert.ErrorIs(t, s.AuthorRepository.DeleteAuthor(ctx, author.ID), ErrAuthorNotFound)

	books, err := s.BookRepository.ListBooks(ctx)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Nil(t, books[0].AuthorID, "deleting an author nullifies its books' reference")

	require.NoError(t, s.BookRepository.DeleteBook(ctx, book.ID))
	_, err = s.BookRepository.GetBook(ctx, book.ID)
	assert.ErrorIs(t, err, ErrBookNotFound)

	require.NoError(t, s.Ping(ctx))
}

func TestSQLite_ListsAreOrderedByID(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	now := time.Now().UTC()

	for _, name := range []string{"c", "a", "b"} {
		_, err := s.AuthorRepository.CreateAuthor(ctx, models.Author{Name: name, CreatedAt: now, UpdatedAt: now})
		require.NoError(t, err)
	}

	authors, err := s.AuthorRepository.ListAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 3)
	for i := 1; i < len(authors); i++ {
		assert.Less(t, authors[i-1].ID, authors[i].ID)
	}
	assert.Equal(t, "c", authors[0].Name)
}
