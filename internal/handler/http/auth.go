// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/models"
)

// register creates an account and answers 201 with the public user record.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		return err
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		return err
	}

	log.Info().Int64("id", registeredUser.ID).Msg("user registered")
	h.writeJSON(w, r, registeredUser, http.StatusCreated)
	return nil
}

// login checks credentials and answers with a fresh token, both in the body
// and in the Authorization header.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		return err
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		return err
	}

	token, err := h.services.TokenService.Issue(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		return err
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	h.writeJSON(w, r, models.TokenResponse{Token: token.SignedString}, http.StatusOK)
	return nil
}
