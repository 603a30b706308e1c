// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-book-catalog/internal/config"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisCache(t *testing.T) (*RedisCache, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)

	cache, err := NewRedisCache(context.Background(), config.Cache{RedisAddress: srv.Addr(), TTL: time.Minute}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return cache, srv
}

func TestRedisCache_GetSetDelete(t *testing.T) {
	cache, srv := newTestRedisCache(t)
	ctx := context.Background()

	_, ok, err := cache.Get(ctx, "authors")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Set(ctx, "authors", []byte(`[{"id":1}]`)))
	assert.True(t, srv.Exists(keyPrefix+"authors"))

	value, ok, err := cache.Get(ctx, "authors")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, string(value))

	require.NoError(t, cache.Delete(ctx, "authors", "books"))
	_, ok, err = cache.Get(ctx, "authors")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_TTL(t *testing.T) {
	cache, srv := newTestRedisCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "books", []byte("[]")))
	assert.Equal(t, time.Minute, srv.TTL(keyPrefix+"books"))

	srv.FastForward(2 * time.Minute)

	_, ok, err := cache.Get(ctx, "books")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRedisCache_DeleteNoKeys(t *testing.T) {
	cache, _ := newTestRedisCache(t)
	assert.NoError(t, cache.Delete(context.Background()))
}

func TestNewRedisCache_Unreachable(t *testing.T) {
	srv := miniredis.RunT(t)
	addr := srv.Addr()
	srv.Close()

	_, err := NewRedisCache(context.Background(), config.Cache{RedisAddress: addr}, logger.Nop())
	assert.Error(t, err)
}
