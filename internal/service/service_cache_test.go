// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-book-catalog/internal/mock"
	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCachedAuthorService_ListAuthors_Hit(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthorService(ctrl)
	cache := mock.NewMockListCache(ctrl)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, AuthorsCacheKey).Return([]byte(`[{"id":1,"name":"A"}]`), true, nil)
	inner.EXPECT().ListAuthors(gomock.Any()).Times(0)

	authors, err := NewCachedAuthorService(inner, cache).ListAuthors(ctx)
	require.NoError(t, err)
	require.Len(t, authors, 1)
	assert.Equal(t, "A", authors[0].Name)
}

func TestCachedAuthorService_ListAuthors_MissFillsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthorService(ctrl)
	cache := mock.NewMockListCache(ctrl)
	ctx := context.Background()

	gomock.InOrder(
		cache.EXPECT().Get(ctx, AuthorsCacheKey).Return(nil, false, nil),
		inner.EXPECT().ListAuthors(ctx).Return([]models.Author{{ID: 2, Name: "B"}}, nil),
		cache.EXPECT().Set(ctx, AuthorsCacheKey, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, value []byte) error {
				assert.Contains(t, string(value), `"name":"B"`)
				return nil
			},
		),
	)

	authors, err := NewCachedAuthorService(inner, cache).ListAuthors(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), authors[0].ID)
}

func TestCachedAuthorService_CacheFailureFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthorService(ctrl)
	cache := mock.NewMockListCache(ctrl)
	ctx := context.Background()

	cache.EXPECT().Get(ctx, AuthorsCacheKey).Return(nil, false, errors.New("redis down"))
	inner.EXPECT().ListAuthors(ctx).Return([]models.Author{}, nil)
	cache.EXPECT().Set(ctx, AuthorsCacheKey, []byte("[]")).Return(errors.New("redis down"))

	authors, err := NewCachedAuthorService(inner, cache).ListAuthors(ctx)
	require.NoError(t, err)
	assert.Empty(t, authors)
}

func TestCachedAuthorService_DeleteInvalidatesBothLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthorService(ctrl)
	cache := mock.NewMockListCache(ctrl)
	ctx := context.Background()

	inner.EXPECT().DeleteAuthor(ctx, int64(1)).Return(nil)
	cache.EXPECT().Delete(ctx, AuthorsCacheKey, BooksCacheKey).Return(nil)

	require.NoError(t, NewCachedAuthorService(inner, cache).DeleteAuthor(ctx, 1))
}

func TestCachedAuthorService_FailedWriteKeepsCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockAuthorService(ctrl)
	cache := mock.NewMockListCache(ctrl)
	ctx := context.Background()

	inner.EXPECT().UpdateAuthor(ctx, int64(1), gomock.Any()).Return(models.Author{}, ErrAuthorNotFound)
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	_, err := NewCachedAuthorService(inner, cache).UpdateAuthor(ctx, 1, models.AuthorPatch{})
	assert.ErrorIs(t, err, ErrAuthorNotFound)
}

func TestCachedBookService_WritesInvalidateBooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockBookService(ctrl)
	cache := mock.NewMockListCache(ctrl)
	ctx := context.Background()
	svc := NewCachedBookService(inner, cache)

	inner.EXPECT().CreateBook(ctx, gomock.Any()).Return(models.Book{ID: 1}, nil)
	inner.EXPECT().UpdateBook(ctx, int64(1), gomock.Any()).Return(models.Book{ID: 1}, nil)
	inner.EXPECT().DeleteBook(ctx, int64(1)).Return(nil)
	cache.EXPECT().Delete(ctx, BooksCacheKey).Return(nil).Times(3)

	_, err := svc.CreateBook(ctx, models.Book{})
	require.NoError(t, err)
	_, err = svc.UpdateBook(ctx, 1, models.BookPatch{})
	require.NoError(t, err)
	require.NoError(t, svc.DeleteBook(ctx, 1))
}
