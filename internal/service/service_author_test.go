// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/mock"
	"github.com/MKhiriev/go-book-catalog/internal/store"
	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAuthorSvc(t *testing.T) (*authorService, *mock.MockAuthorRepository) {
	t.Helper()
	repo := mock.NewMockAuthorRepository(gomock.NewController(t))

	svc := NewAuthorService(repo, logger.Nop()).(*authorService)
	svc.now = func() time.Time { return fixedNow }
	return svc, repo
}

func strPtr(s string) *string { return &s }

func TestAuthorService_CreateAuthor(t *testing.T) {
	svc, repo := newTestAuthorSvc(t)
	ctx := context.Background()

	repo.EXPECT().CreateAuthor(ctx, models.Author{Name: "Ursula", CreatedAt: fixedNow, UpdatedAt: fixedNow}).
		Return(models.Author{ID: 1, Name: "Ursula", CreatedAt: fixedNow, UpdatedAt: fixedNow}, nil)

	created, err := svc.CreateAuthor(ctx, models.Author{ID: 99, Name: "Ursula"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
}

func TestAuthorService_CreateAuthor_EmptyName(t *testing.T) {
	svc, _ := newTestAuthorSvc(t)

	_, err := svc.CreateAuthor(context.Background(), models.Author{})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthorService_ListAuthors(t *testing.T) {
	svc, repo := newTestAuthorSvc(t)
	ctx := context.Background()

	repo.EXPECT().ListAuthors(ctx).Return([]models.Author{{ID: 1}, {ID: 2}}, nil)

	authors, err := svc.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, authors, 2)
}

func TestAuthorService_UpdateAuthor(t *testing.T) {
	ctx := context.Background()
	patch := models.AuthorPatch{Biography: strPtr("bio")}

	t.Run("updated", func(t *testing.T) {
		svc, repo := newTestAuthorSvc(t)
		repo.EXPECT().UpdateAuthor(ctx, int64(5), patch, fixedNow).Return(models.Author{ID: 5, Biography: strPtr("bio")}, nil)

		updated, err := svc.UpdateAuthor(ctx, 5, patch)
		require.NoError(t, err)
		assert.Equal(t, "bio", *updated.Biography)
	})

	t.Run("missing", func(t *testing.T) {
		svc, repo := newTestAuthorSvc(t)
		repo.EXPECT().UpdateAuthor(ctx, int64(5), patch, fixedNow).Return(models.Author{}, store.ErrAuthorNotFound)

		_, err := svc.UpdateAuthor(ctx, 5, patch)
		assert.ErrorIs(t, err, ErrAuthorNotFound)
	})

	t.Run("blank name", func(t *testing.T) {
		svc, _ := newTestAuthorSvc(t)

		_, err := svc.UpdateAuthor(ctx, 5, models.AuthorPatch{Name: strPtr("")})
		assert.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestAuthorService_DeleteAuthor(t *testing.T) {
	ctx := context.Background()
	dbErr := errors.New("db down")

	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "deleted"},
		{name: "missing", repoErr: store.ErrAuthorNotFound, wantErr: ErrAuthorNotFound},
		{name: "db error", repoErr: dbErr, wantErr: dbErr},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthorSvc(t)
			repo.EXPECT().DeleteAuthor(ctx, int64(3)).Return(tt.repoErr)

			err := svc.DeleteAuthor(ctx, 3)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
