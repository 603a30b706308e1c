// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/store"
	"github.com/MKhiriev/go-book-catalog/models"
)

// Cache keys of the list responses.
const (
	AuthorsCacheKey = "authors"
	BooksCacheKey   = "books"
)

// CachedAuthorService serves ListAuthors from a ListCache and drops the
// cached lists on every successful write. Deleting an author also changes
// books, so author writes invalidate both lists.
//
// Cache failures are logged and never surface to the caller.
type CachedAuthorService struct {
	inner AuthorService
	cache store.ListCache
}

func NewCachedAuthorService(inner AuthorService, cache store.ListCache) *CachedAuthorService {
	return &CachedAuthorService{inner: inner, cache: cache}
}

func (s *CachedAuthorService) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	created, err := s.inner.CreateAuthor(ctx, author)
	if err == nil {
		invalidate(ctx, s.cache, AuthorsCacheKey)
	}
	return created, err
}

func (s *CachedAuthorService) ListAuthors(ctx context.Context) ([]models.Author, error) {
	return readThrough(ctx, s.cache, AuthorsCacheKey, s.inner.ListAuthors)
}

func (s *CachedAuthorService) UpdateAuthor(ctx context.Context, id int64, patch models.AuthorPatch) (models.Author, error) {
	updated, err := s.inner.UpdateAuthor(ctx, id, patch)
	if err == nil {
		invalidate(ctx, s.cache, AuthorsCacheKey)
	}
	return updated, err
}

func (s *CachedAuthorService) DeleteAuthor(ctx context.Context, id int64) error {
	err := s.inner.DeleteAuthor(ctx, id)
	if err == nil {
		invalidate(ctx, s.cache, AuthorsCacheKey, BooksCacheKey)
	}
	return err
}

// CachedBookService is the BookService counterpart of CachedAuthorService.
type CachedBookService struct {
	inner BookService
	cache store.ListCache
}

func NewCachedBookService(inner BookService, cache store.ListCache) *CachedBookService {
	return &CachedBookService{inner: inner, cache: cache}
}

func (s *CachedBookService) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	created, err := s.inner.CreateBook(ctx, book)
	if err == nil {
		invalidate(ctx, s.cache, BooksCacheKey)
	}
	return created, err
}

func (s *CachedBookService) ListBooks(ctx context.Context) ([]models.Book, error) {
	return readThrough(ctx, s.cache, BooksCacheKey, s.inner.ListBooks)
}

func (s *CachedBookService) UpdateBook(ctx context.Context, id int64, patch models.BookPatch) (models.Book, error) {
	updated, err := s.inner.UpdateBook(ctx, id, patch)
	if err == nil {
		invalidate(ctx, s.cache, BooksCacheKey)
	}
	return updated, err
}

func (s *CachedBookService) DeleteBook(ctx context.Context, id int64) error {
	err := s.inner.DeleteBook(ctx, id)
	if err == nil {
		invalidate(ctx, s.cache, BooksCacheKey)
	}
	return err
}

func readThrough[T any](ctx context.Context, cache store.ListCache, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	log := logger.FromContext(ctx)

	cached, ok, err := cache.Get(ctx, key)
	if err != nil {
		log.Err(err).Str("key", key).Msg("cache read failed")
	}
	if ok {
		var items []T
		if err = json.Unmarshal(cached, &items); err == nil {
			return items, nil
		}
		log.Err(err).Str("key", key).Msg("cached value is corrupt")
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(items)
	if err != nil {
		log.Err(err).Str("key", key).Msg("cache encode failed")
		return items, nil
	}
	if err = cache.Set(ctx, key, encoded); err != nil {
		log.Err(err).Str("key", key).Msg("cache write failed")
	}

	return items, nil
}

func invalidate(ctx context.Context, cache store.ListCache, keys ...string) {
	if err := cache.Delete(ctx, keys...); err != nil {
		logger.FromContext(ctx).Err(err).Strs("keys", keys).Msg("cache invalidation failed")
	}
}
