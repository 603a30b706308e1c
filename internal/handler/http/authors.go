// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-book-catalog/models"
)

func (h *Handler) createAuthor(w http.ResponseWriter, r *http.Request) error {
	var author models.Author
	if err := decodeJSON(r, &author); err != nil {
		return err
	}

	created, err := h.services.AuthorService.CreateAuthor(r.Context(), author)
	if err != nil {
		return err
	}

	h.writeJSON(w, r, created, http.StatusCreated)
	return nil
}

func (h *Handler) listAuthors(w http.ResponseWriter, r *http.Request) error {
	authors, err := h.services.AuthorService.ListAuthors(r.Context())
	if err != nil {
		return err
	}

	h.writeJSON(w, r, authors, http.StatusOK)
	return nil
}

func (h *Handler) updateAuthor(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	var patch models.AuthorPatch
	if err = decodeJSON(r, &patch); err != nil {
		return err
	}

	updated, err := h.services.AuthorService.UpdateAuthor(r.Context(), id, patch)
	if err != nil {
		return err
	}

	h.writeJSON(w, r, updated, http.StatusOK)
	return nil
}

func (h *Handler) deleteAuthor(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	if err = h.services.AuthorService.DeleteAuthor(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
