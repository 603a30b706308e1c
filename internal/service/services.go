// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-book-catalog/internal/config"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/store"
)

type Services struct {
	AuthService    AuthService
	TokenService   TokenService
	AuthorService  AuthorService
	BookService    BookService
	AppInfoService AppInfoService
	HealthService  HealthService
}

// NewServices wires every service on top of storages. When storages carry a
// list cache, the author and book services are wrapped with it.
func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	tokenService, err := NewTokenService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	authorService := NewAuthorService(storages.AuthorRepository, logger)
	bookService := NewBookService(storages.BookRepository, storages.AuthorRepository, logger)
	if storages.Cache != nil {
		authorService = NewCachedAuthorService(authorService, storages.Cache)
		bookService = NewCachedBookService(bookService, storages.Cache)
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		TokenService:   tokenService,
		AuthorService:  authorService,
		BookService:    bookService,
		AppInfoService: appInfoService,
		HealthService:  NewHealthService(storages),
	}, nil
}
