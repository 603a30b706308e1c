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

// bookService keeps every stored book pointing at an existing author.
// The author is looked up before the write, and a foreign key violation
// raised by a concurrent author deletion is reported the same way.
type bookService struct {
	bookRepository   store.BookRepository
	authorRepository store.AuthorRepository

	now func() time.Time

	logger *logger.Logger
}

func NewBookService(bookRepository store.BookRepository, authorRepository store.AuthorRepository, logger *logger.Logger) BookService {
	return &bookService{
		bookRepository:   bookRepository,
		authorRepository: authorRepository,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *bookService) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	if book.Title == "" || book.ISBN == "" || book.AuthorID == nil {
		return models.Book{}, ErrInvalidDataProvided
	}

	if err := s.checkAuthor(ctx, *book.AuthorID); err != nil {
		return models.Book{}, err
	}

	now := s.now().UTC()
	book.ID = 0
	book.CreatedAt = now
	book.UpdatedAt = now

	created, err := s.bookRepository.CreateBook(ctx, book)
	if errors.Is(err, store.ErrAuthorReferenceNotFound) {
		return models.Book{}, ErrAuthorNotFound
	}
	if err != nil {
		return models.Book{}, fmt.Errorf("book creation failed: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("book_id", created.ID).Msg("book created")
	return created, nil
}

func (s *bookService) ListBooks(ctx context.Context) ([]models.Book, error) {
	books, err := s.bookRepository.ListBooks(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing books failed: %w", err)
	}

	return books, nil
}

// UpdateBook applies patch to the book with id. When patch names an author,
// that author must exist.
func (s *bookService) UpdateBook(ctx context.Context, id int64, patch models.BookPatch) (models.Book, error) {
	if id <= 0 || (patch.Title != nil && *patch.Title == "") || (patch.ISBN != nil && *patch.ISBN == "") {
		return models.Book{}, ErrInvalidDataProvided
	}

	if patch.AuthorID != nil {
		if err := s.checkAuthor(ctx, *patch.AuthorID); err != nil {
			return models.Book{}, err
		}
	}

	updated, err := s.bookRepository.UpdateBook(ctx, id, patch, s.now().UTC())
	switch {
	case errors.Is(err, store.ErrBookNotFound):
		return models.Book{}, ErrBookNotFound
	case errors.Is(err, store.ErrAuthorReferenceNotFound):
		return models.Book{}, ErrAuthorNotFound
	case err != nil:
		return models.Book{}, fmt.Errorf("book update failed: %w", err)
	}

	return updated, nil
}

func (s *bookService) DeleteBook(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidDataProvided
	}

	err := s.bookRepository.DeleteBook(ctx, id)
	if errors.Is(err, store.ErrBookNotFound) {
		return ErrBookNotFound
	}
	if err != nil {
		return fmt.Errorf("book deletion failed: %w", err)
	}

	return nil
}

func (s *bookService) checkAuthor(ctx context.Context, authorID int64) error {
	_, err := s.authorRepository.GetAuthor(ctx, authorID)
	if errors.Is(err, store.ErrAuthorNotFound) {
		logger.FromContext(ctx).Info().Int64("author_id", authorID).Msg("referenced author does not exist")
		return ErrAuthorNotFound
	}
	if err != nil {
		return fmt.Errorf("author lookup failed: %w", err)
	}

	return nil
}
