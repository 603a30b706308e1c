// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-book-catalog/models"
)

func (h *Handler) createBook(w http.ResponseWriter, r *http.Request) error {
	var book models.Book
	if err := decodeJSON(r, &book); err != nil {
		return err
	}

	created, err := h.services.BookService.CreateBook(r.Context(), book)
	if err != nil {
		return err
	}

	h.writeJSON(w, r, created, http.StatusCreated)
	return nil
}

func (h *Handler) listBooks(w http.ResponseWriter, r *http.Request) error {
	books, err := h.services.BookService.ListBooks(r.Context())
	if err != nil {
		return err
	}

	h.writeJSON(w, r, books, http.StatusOK)
	return nil
}

func (h *Handler) updateBook(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	var patch models.BookPatch
	if err = decodeJSON(r, &patch); err != nil {
		return err
	}

	updated, err := h.services.BookService.UpdateBook(r.Context(), id, patch)
	if err != nil {
		return err
	}

	h.writeJSON(w, r, updated, http.StatusOK)
	return nil
}

func (h *Handler) deleteBook(w http.ResponseWriter, r *http.Request) error {
	id, err := pathID(r)
	if err != nil {
		return err
	}

	if err = h.services.BookService.DeleteBook(r.Context(), id); err != nil {
		return err
	}

	w.WriteHeader(http.StatusNoContent)
	return nil
}
