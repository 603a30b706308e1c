// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-book-catalog/internal/config"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
)

// Storages bundles every repository the services depend on. Cache is nil
// when no Redis address is configured.
type Storages struct {
	UserRepository   UserRepository
	AuthorRepository AuthorRepository
	BookRepository   BookRepository
	Cache            ListCache

	db    *DB
	redis *RedisCache
}

// NewStorages connects to the database, applies migrations and, when
// configured, connects to Redis.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(ctx); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	storages := newStoragesFromDB(db, log)

	if cfg.Cache.RedisAddress != "" {
		cache, err := NewRedisCache(ctx, cfg.Cache, log)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		storages.redis = cache
		storages.Cache = cache
	}

	return storages, nil
}

func newStoragesFromDB(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		AuthorRepository: NewAuthorRepository(db, log),
		BookRepository:   NewBookRepository(db, log),
		db:               db,
	}
}

// Ping checks that the database answers.
func (s *Storages) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the database pool and the Redis client.
func (s *Storages) Close() error {
	var errs []error
	if s.redis != nil {
		errs = append(errs, s.redis.Close())
	}
	errs = append(errs, s.db.Close())

	return errors.Join(errs...)
}
