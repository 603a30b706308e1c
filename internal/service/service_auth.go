// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-book-catalog/internal/config"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/store"
	"github.com/MKhiriev/go-book-catalog/internal/utils"
	"github.com/MKhiriev/go-book-catalog/models"
	"golang.org/x/crypto/bcrypt"
)

// dummyPassword is hashed once and compared against when a login names an
// unknown user, so that both failure paths spend the same bcrypt time.
const dummyPassword = "go-book-catalog-dummy-password"

// authService is the concrete implementation of AuthService.
// It handles user registration and credential verification using a
// UserRepository for persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashCost is the bcrypt work factor used for new passwords.
	hashCost int

	// dummyHash lazily computes the bcrypt hash of dummyPassword.
	dummyHash func() (string, error)

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	cost := cfg.PasswordHashCost
	return &authService{
		userRepository: userRepository,
		hashCost:       cost,
		dummyHash: sync.OnceValues(func() (string, error) {
			return utils.HashPassword(dummyPassword, cost)
		}),
		now:    time.Now,
		logger: logger,
	}
}

// RegisterUser creates a new user account with a bcrypt-hashed password.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if the username or password is empty.
//   - ErrUsernameTaken if the username is already registered, whether the
//     lookup or the unique constraint on insert detects it.
//   - A wrapped storage error for anything else.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	_, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	switch {
	case err == nil:
		log.Info().Str("username", credentials.Username).Msg("username is already taken")
		return models.User{}, ErrUsernameTaken
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	hash, err := utils.HashPassword(credentials.Password, a.hashCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		log.Info().Str("username", credentials.Username).Msg("password is too long to hash")
		return models.User{}, ErrInvalidDataProvided
	}
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	now := a.now().UTC()
	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     credentials.Username,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, store.ErrUsernameAlreadyExists) {
		return models.User{}, ErrUsernameTaken
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
// For an unknown username the password is still compared against a dummy
// hash so both paths take the same time.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if credentials.Username == "" || credentials.Password == "" {
		log.Error().Str("username", credentials.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, credentials.Username)
	if errors.Is(err, store.ErrNoUserWasFound) {
		if hash, hashErr := a.dummyHash(); hashErr == nil {
			_ = utils.ComparePassword(hash, credentials.Password)
		}
		log.Info().Str("username", credentials.Username).Msg("login for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", credentials.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	err = utils.ComparePassword(foundUser.PasswordHash, credentials.Password)
	if errors.Is(err, utils.ErrPasswordMismatch) {
		log.Info().Int64("id", foundUser.ID).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Int64("id", foundUser.ID).Msg("stored password hash is unusable")
		return models.User{}, fmt.Errorf("password comparison failed: %w", err)
	}

	return foundUser, nil
}
