// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrNoTokenSignKey          = errors.New("token sign key is not specified")

	ErrAuthorNotFound = errors.New("author not found")
	ErrBookNotFound   = errors.New("book not found")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
