// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-book-catalog/internal/app"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/service"
	"github.com/MKhiriev/go-book-catalog/internal/utils"
	"github.com/MKhiriev/go-book-catalog/internal/validators"
	"github.com/MKhiriev/go-book-catalog/models"
)

var errorStatusMap = map[error]int{
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrEmptyToken:                 http.StatusUnauthorized,

	service.ErrTokenIsExpiredOrInvalid: http.StatusForbidden,

	service.ErrUsernameTaken:       http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusBadRequest,
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	ErrInvalidJSON:                 http.StatusBadRequest,
	ErrInvalidGzipBody:             http.StatusBadRequest,
	ErrInvalidID:                   http.StatusBadRequest,

	service.ErrAuthorNotFound: http.StatusNotFound,
	service.ErrBookNotFound:   http.StatusNotFound,
	ErrRouteNotFound:          http.StatusNotFound,

	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
}

var errorMessageMap = map[error]string{
	ErrEmptyAuthorizationHeader:   app.MsgUnauthorized,
	ErrInvalidAuthorizationHeader: app.MsgUnauthorized,
	ErrEmptyToken:                 app.MsgUnauthorized,

	service.ErrTokenIsExpiredOrInvalid: app.MsgInvalidToken,

	service.ErrUsernameTaken:       app.MsgUsernameTaken,
	service.ErrInvalidCredentials:  app.MsgInvalidCredentials,
	service.ErrInvalidDataProvided: app.MsgInvalidDataProvided,
	ErrInvalidJSON:                 app.MsgInvalidDataProvided,
	ErrInvalidGzipBody:             app.MsgInvalidDataProvided,
	ErrInvalidID:                   app.MsgInvalidDataProvided,

	service.ErrAuthorNotFound: app.MsgAuthorNotFound,
	service.ErrBookNotFound:   app.MsgBookNotFound,
	ErrRouteNotFound:          app.MsgRouteNotFound,

	ErrMethodNotAllowed: app.MsgMethodNotAllowed,
}

// statusFromError returns the status code of the first known error in
// err's chain, or 500.
func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) (string, bool) {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message, true
		}
	}
	return "", false
}

// renderError writes the single response for a failed request.
//
// Validation failures become 400 with the per-field list. Known errors get
// their mapped status and message. Anything else is logged and answered
// with 500, carrying the raw error text only when the handler is configured
// to expose it.
func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var fieldsErr *validators.FieldsError
	if errors.As(err, &fieldsErr) {
		log.Info().Err(err).Msg("request failed validation")
		h.writeJSON(w, r, models.ErrorResponse{
			Message: app.MsgValidationFailed,
			Errors:  fieldsErr.Fields,
		}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	message, known := messageFromError(err)

	if !known || status == http.StatusInternalServerError {
		log.Err(err).Str("method", r.Method).Str("uri", r.RequestURI).Msg("unexpected error while handling request")
		message = app.MsgInternalServerError
		if h.settings.ExposeInternalErrors {
			message = err.Error()
		}
	} else {
		log.Info().Err(err).Int("status", status).Msg("request rejected")
	}

	h.writeJSON(w, r, models.ErrorResponse{Message: message}, status)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
