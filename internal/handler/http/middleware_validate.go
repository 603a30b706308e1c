// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/MKhiriev/go-book-catalog/internal/app"
	"github.com/MKhiriev/go-book-catalog/internal/validators"
	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/go-chi/chi/v5"
)

// maxBodyBytes caps request bodies read by the validation middleware.
const maxBodyBytes = 1 << 20

// validate returns a middleware that runs rules against the request before
// the handler. On any failure the request is answered with 400 and the full
// list of field errors; the handler is not called.
//
// The body is read once, validated as a generic JSON object and restored so
// the handler can decode it into its own type.
func (h *Handler) validate(rules *validators.RuleSet) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			input := validators.Input{Params: pathParams(r, rules)}

			if rules.HasBody() {
				body, err := readBody(w, r)
				if err != nil {
					h.renderError(w, r, err)
					return
				}

				input.Body, err = decodeObject(body)
				if err != nil {
					h.renderError(w, r, &validators.FieldsError{Fields: []models.FieldError{
						{Field: "body", Message: app.MsgInvalidJSONBody},
					}})
					return
				}
			}

			if err := rules.Validate(r.Context(), input); err != nil {
				h.renderError(w, r, err)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// readBody reads and closes the whole body and puts an identical reader
// back on r. Closing releases wrappers such as the pooled gzip reader.
func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}

	original := r.Body
	body, err := io.ReadAll(http.MaxBytesReader(w, original, maxBodyBytes))
	_ = original.Close()
	if err != nil {
		return nil, errors.Join(ErrInvalidJSON, err)
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	return body, nil
}

// decodeObject decodes body as a JSON object, keeping numbers as
// json.Number. An empty body is an empty object.
func decodeObject(body []byte) (map[string]any, error) {
	if len(bytes.TrimSpace(body)) == 0 {
		return map[string]any{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var object map[string]any
	if err := dec.Decode(&object); err != nil {
		return nil, err
	}
	if object == nil {
		return nil, ErrInvalidJSON
	}
	if dec.More() {
		return nil, ErrInvalidJSON
	}

	return object, nil
}

func pathParams(r *http.Request, rules *validators.RuleSet) map[string]string {
	params := make(map[string]string)
	for _, f := range rules.Fields {
		if f.Source == validators.SourcePath {
			params[f.Name] = chi.URLParam(r, f.Name)
		}
	}
	return params
}
