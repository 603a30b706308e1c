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

type authorRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewAuthorRepository constructs an [AuthorRepository] on db.
func NewAuthorRepository(db *DB, logger *logger.Logger) AuthorRepository {
	logger.Debug().Msg("creating author repository")
	return &authorRepository{
		db:     db,
		logger: logger,
	}
}

func (r *authorRepository) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertAuthorQuery(r.db.builder, author)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.CreateAuthor").Msg("error building query")
		return models.Author{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanAuthor(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.CreateAuthor").Msg("error inserting author")
		return models.Author{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// ListAuthors returns every author ordered by id. The result is never nil.
func (r *authorRepository) ListAuthors(ctx context.Context) ([]models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAuthorsQuery(r.db.builder)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.ListAuthors").Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.ListAuthors").Msg("error selecting authors")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	authors := make([]models.Author, 0)
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			log.Err(err).Str("func", "*authorRepository.ListAuthors").Msg("error scanning author")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		authors = append(authors, author)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*authorRepository.ListAuthors").Msg("error iterating authors")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return authors, nil
}

// GetAuthor returns the author with id or [ErrAuthorNotFound].
func (r *authorRepository) GetAuthor(ctx context.Context, id int64) (models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectAuthorQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.GetAuthor").Msg("error building query")
		return models.Author{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	author, err := scanAuthor(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Author{}, ErrAuthorNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.GetAuthor").Msg("error selecting author")
		return models.Author{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return author, nil
}

// UpdateAuthor applies patch to the author with id and returns the stored
// result. An empty patch only bumps updated_at.
func (r *authorRepository) UpdateAuthor(ctx context.Context, id int64, patch models.AuthorPatch, updatedAt time.Time) (models.Author, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateAuthorQuery(r.db.builder, id, patch, updatedAt)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.UpdateAuthor").Msg("error building query")
		return models.Author{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanAuthor(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Author{}, ErrAuthorNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.UpdateAuthor").Msg("error updating author")
		return models.Author{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

// DeleteAuthor removes the author with id. Books referencing it keep
// existing with a NULL author_id.
func (r *authorRepository) DeleteAuthor(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteAuthorQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.DeleteAuthor").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*authorRepository.DeleteAuthor").Msg("error deleting author")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrAuthorNotFound
	}

	return nil
}
