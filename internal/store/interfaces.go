// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-book-catalog/models"
)

// UserRepository persists registered accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// AuthorRepository persists catalog authors.
type AuthorRepository interface {
	CreateAuthor(ctx context.Context, author models.Author) (models.Author, error)
	ListAuthors(ctx context.Context) ([]models.Author, error)
	GetAuthor(ctx context.Context, id int64) (models.Author, error)
	UpdateAuthor(ctx context.Context, id int64, patch models.AuthorPatch, updatedAt time.Time) (models.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
}

// BookRepository persists catalog books.
type BookRepository interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	ListBooks(ctx context.Context) ([]models.Book, error)
	GetBook(ctx context.Context, id int64) (models.Book, error)
	UpdateBook(ctx context.Context, id int64, patch models.BookPatch, updatedAt time.Time) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

// ListCache stores serialized list responses under a key for a limited time.
// Get reports a miss with ok == false and a nil error.
type ListCache interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}
