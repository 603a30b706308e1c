// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/models"
)

type bookRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewBookRepository constructs a [BookRepository] on db.
func NewBookRepository(db *DB, logger *logger.Logger) BookRepository {
	logger.Debug().Msg("creating book repository")
	return &bookRepository{
		db:     db,
		logger: logger,
	}
}

// CreateBook inserts book. A foreign key violation on author_id is
// reported as [ErrAuthorReferenceNotFound].
func (r *bookRepository) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertBookQuery(r.db.builder, book)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error building query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanBook(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.CreateBook").Msg("error inserting book")

		if r.db.classify(err) == ForeignKeyViolation {
			return models.Book{}, ErrAuthorReferenceNotFound
		}
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// ListBooks returns every book ordered by id. The result is never nil.
func (r *bookRepository) ListBooks(ctx context.Context) ([]models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBooksQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("error selecting books")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	books := make([]models.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("error scanning book")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		books = append(books, book)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*bookRepository.ListBooks").Msg("error iterating books")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return books, nil
}

// GetBook returns the book with id or [ErrBookNotFound].
func (r *bookRepository) GetBook(ctx context.Context, id int64) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectBookQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetBook").Msg("error building query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	book, err := scanBook(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Book{}, ErrBookNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.GetBook").Msg("error selecting book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return book, nil
}

// UpdateBook applies patch to the book with id and returns the stored result.
func (r *bookRepository) UpdateBook(ctx context.Context, id int64, patch models.BookPatch, updatedAt time.Time) (models.Book, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateBookQuery(r.db.builder, id, patch, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.UpdateBook").Msg("error building query")
		return models.Book{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanBook(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case err == nil:
		return updated, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.Book{}, ErrBookNotFound
	case r.db.classify(err) == ForeignKeyViolation:
		log.Err(err).Str("func", "*bookRepository.UpdateBook").Msg("author reference violated")
		return models.Book{}, ErrAuthorReferenceNotFound
	default:
		log.Err(err).Str("func", "*bookRepository.UpdateBook").Msg("error updating book")
		return models.Book{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

func (r *bookRepository) DeleteBook(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteBookQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*bookRepository.DeleteBook").Msg("error deleting book")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrBookNotFound
	}

	return nil
}
