// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-book-catalog/models"
)

// AuthService registers users and checks their credentials.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
}

// TokenService issues and verifies bearer tokens.
type TokenService interface {
	Issue(ctx context.Context, user models.User) (models.Token, error)
	Verify(ctx context.Context, tokenString string) (models.Claims, error)
}

type AuthorService interface {
	CreateAuthor(ctx context.Context, author models.Author) (models.Author, error)
	ListAuthors(ctx context.Context) ([]models.Author, error)
	UpdateAuthor(ctx context.Context, id int64, patch models.AuthorPatch) (models.Author, error)
	DeleteAuthor(ctx context.Context, id int64) error
}

type BookService interface {
	CreateBook(ctx context.Context, book models.Book) (models.Book, error)
	ListBooks(ctx context.Context) ([]models.Book, error)
	UpdateBook(ctx context.Context, id int64, patch models.BookPatch) (models.Book, error)
	DeleteBook(ctx context.Context, id int64) error
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// HealthService reports whether the service's dependencies answer.
type HealthService interface {
	Check(ctx context.Context) error
}
