// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthService_Check(t *testing.T) {
	ok := NewHealthService(pingerFunc(func(context.Context) error { return nil }))
	assert.NoError(t, ok.Check(context.Background()))

	pingErr := errors.New("connection refused")
	down := NewHealthService(pingerFunc(func(context.Context) error { return pingErr }))
	assert.ErrorIs(t, down.Check(context.Background()), pingErr)
}
