// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/store"
	"github.com/MKhiriev/go-book-catalog/models"
)

type authorService struct {
	authorRepository store.AuthorRepository

	now func() time.Time

	logger *logger.Logger
}

func NewAuthorService(authorRepository store.AuthorRepository, logger *logger.Logger) AuthorService {
	return &authorService{
		authorRepository: authorRepository,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *authorService) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	if author.Name == "" {
		return models.Author{}, ErrInvalidDataProvided
	}

	now := s.now().UTC()
	author.ID = 0
	author.CreatedAt = now
	author.UpdatedAt = now

	created, err := s.authorRepository.CreateAuthor(ctx, author)
	if err != nil {
		return models.Author{}, fmt.Errorf("author creation failed: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("author_id", created.ID).Msg("author created")
	return created, nil
}

func (s *authorService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	authors, err := s.authorRepository.ListAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing authors failed: %w", err)
	}

	return authors, nil
}

// UpdateAuthor applies patch to the author with id. ErrAuthorNotFound is
// returned when no such author exists.
func (s *authorService) UpdateAuthor(ctx context.Context, id int64, patch models.AuthorPatch) (models.Author, error) {
	if id <= 0 || (patch.Name != nil && *patch.Name == "") {
		return models.Author{}, ErrInvalidDataProvided
	}

	updated, err := s.authorRepository.UpdateAuthor(ctx, id, patch, s.now().UTC())
	if errors.Is(err, store.ErrAuthorNotFound) {
		return models.Author{}, ErrAuthorNotFound
	}
	if err != nil {
		return models.Author{}, fmt.Errorf("author update failed: %w", err)
	}

	return updated, nil
}

// DeleteAuthor removes the author with id. Books written by the author stay
// in the catalog without an author.
func (s *authorService) DeleteAuthor(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidDataProvided
	}

	err := s.authorRepository.DeleteAuthor(ctx, id)
	if errors.Is(err, store.ErrAuthorNotFound) {
		return ErrAuthorNotFound
	}
	if err != nil {
		return fmt.Errorf("author deletion failed: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("author_id", id).Msg("author deleted")
	return nil
}
