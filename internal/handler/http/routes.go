// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-book-catalog/internal/validators"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.recoverer)
	router.Use(cors.Handler(h.corsOptions()))
	router.Use(middleware.Compress(5, "application/json", "text/plain"))
	router.Use(h.withGzipRequest)
	if h.settings.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.settings.RequestTimeout))
	}

	// set before Route so sub-routers inherit them
	router.NotFound(h.handle(h.notFound))
	router.MethodNotAllowed(h.handle(h.methodNotAllowed))

	router.Get("/health", h.handle(h.health))

	router.Route("/api", func(r chi.Router) {
		// routes without authorization
		r.Get("/version", h.handle(h.getServerVersion))
		r.With(h.validate(validators.RegisterRules())).Post("/register", h.handle(h.register))
		r.With(h.validate(validators.LoginRules())).Post("/login", h.handle(h.login))

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Route("/authors", func(r chi.Router) {
				r.Get("/", h.handle(h.listAuthors))
				r.With(h.validate(validators.CreateAuthorRules())).Post("/", h.handle(h.createAuthor))
				r.With(h.validate(validators.UpdateAuthorRules())).Put("/{id}", h.handle(h.updateAuthor))
				r.With(h.validate(validators.DeleteAuthorRules())).Delete("/{id}", h.handle(h.deleteAuthor))
			})

			r.Route("/books", func(r chi.Router) {
				r.Get("/", h.handle(h.listBooks))
				r.With(h.validate(validators.CreateBookRules())).Post("/", h.handle(h.createBook))
				r.With(h.validate(validators.UpdateBookRules())).Put("/{id}", h.handle(h.updateBook))
				r.With(h.validate(validators.DeleteBookRules())).Delete("/{id}", h.handle(h.deleteBook))
			})
		})
	})

	return router
}

func (h *Handler) corsOptions() cors.Options {
	origins := h.settings.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "Content-Encoding", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
		MaxAge:         300,
	}
}
