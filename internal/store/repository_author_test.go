// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthorRepo(t *testing.T) (*authorRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return NewAuthorRepository(db, logger.Nop()).(*authorRepository), mock
}

func strPtr(s string) *string { return &s }

func TestAuthorRepository_CreateAuthor(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	dob := models.NewDate(1920, time.October, 8)
	author := models.Author{
		Name:        "Frank Herbert",
		Biography:   strPtr("Dune"),
		DateOfBirth: &dob,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	mock.ExpectQuery("INSERT INTO authors \\(name,biography,date_of_birth,created_at,updated_at\\)").
		WithArgs("Frank Herbert", "Dune", "1920-10-08", now, now).
		WillReturnRows(sqlmock.NewRows(authorColumns).
			AddRow(1, "Frank Herbert", "Dune", dob.Time, now, now))

	created, err := repo.CreateAuthor(context.Background(), author)
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.ID)
	require.NotNil(t, created.Biography)
	assert.Equal(t, "Dune", *created.Biography)
	require.NotNil(t, created.DateOfBirth)
	assert.Equal(t, "1920-10-08", created.DateOfBirth.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_CreateAuthor_NullOptionals(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	now := time.Now().UTC()
	mock.ExpectQuery("INSERT INTO authors").
		WithArgs("Anonymous", nil, nil, now, now).
		WillReturnRows(sqlmock.NewRows(authorColumns).
			AddRow(2, "Anonymous", nil, nil, now, now))

	created, err := repo.CreateAuthor(context.Background(), models.Author{Name: "Anonymous", CreatedAt: now, UpdatedAt: now})
	require.NoError(t, err)
	assert.Nil(t, created.Biography)
	assert.Nil(t, created.DateOfBirth)
}

func TestAuthorRepository_ListAuthors(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM authors ORDER BY id").
		WillReturnRows(sqlmock.NewRows(authorColumns).
			AddRow(1, "A", nil, nil, now, now).
			AddRow(2, "B", "bio", "1900-01-01", now, now))

	authors, err := repo.ListAuthors(context.Background())
	require.NoError(t, err)
	require.Len(t, authors, 2)
	assert.Equal(t, "A", authors[0].Name)
	assert.Equal(t, "1900-01-01", authors[1].DateOfBirth.String())
}

func TestAuthorRepository_ListAuthors_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM authors").
		WillReturnRows(sqlmock.NewRows(authorColumns))

	authors, err := repo.ListAuthors(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, authors)
	assert.Empty(t, authors)
}

func TestAuthorRepository_ListAuthors_RowError(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	now := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM authors").
		WillReturnRows(sqlmock.NewRows(authorColumns).
			AddRow(1, "A", nil, nil, now, now).
			RowError(0, errors.New("broken row")))

	_, err := repo.ListAuthors(context.Background())
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestAuthorRepository_GetAuthor_NotFound(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM authors WHERE id = \\$1").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetAuthor(context.Background(), 42)
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestAuthorRepository_UpdateAuthor_OnlyPatchedColumns(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	now := time.Now().UTC()
	mock.ExpectQuery("UPDATE authors SET name = \\$1, updated_at = \\$2 WHERE id = \\$3 RETURNING").
		WithArgs("New Name", now, int64(3)).
		WillReturnRows(sqlmock.NewRows(authorColumns).
			AddRow(3, "New Name", "kept", nil, now, now))

	updated, err := repo.UpdateAuthor(context.Background(), 3, models.AuthorPatch{Name: strPtr("New Name")}, now)
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
	require.NotNil(t, updated.Biography)
	assert.Equal(t, "kept", *updated.Biography)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuthorRepository_UpdateAuthor_NotFound(t *testing.T) {
	repo, mock := newTestAuthorRepo(t)

	mock.ExpectQuery("UPDATE authors").
		WillReturnRows(sqlmock.NewRows(authorColumns))

	_, err := repo.UpdateAuthor(context.Background(), 9, models.AuthorPatch{Name: strPtr("x")}, time.Now())
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestAuthorRepository_DeleteAuthor(t *testing.T) {
	tests := []struct {
		name    string
		result  sql.Result
		execErr error
		wantErr error
	}{
		{name: "deleted", result: sqlmock.NewResult(0, 1)},
		{name: "missing", result: sqlmock.NewResult(0, 0), wantErr: ErrAuthorNotFound},
		{name: "db error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestAuthorRepo(t)

			exp := mock.ExpectExec("DELETE FROM authors WHERE id = \\$1").WithArgs(int64(7))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(tt.result)
			}

			err := repo.DeleteAuthor(context.Background(), 7)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
