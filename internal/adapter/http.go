// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-book-catalog/internal/config"
	"github.com/MKhiriev/go-book-catalog/internal/logger"
	"github.com/MKhiriev/go-book-catalog/internal/utils"
	"github.com/MKhiriev/go-book-catalog/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs the HTTP implementation of [ServerAdapter].
// It normalises the base URL from cfg.HTTPAddress and configures the
// underlying resty client with it and cfg.RequestTimeout. cfg.Token, when
// set, is used for authenticated calls.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	client := utils.NewHTTPClient(cfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	a := &httpServerAdapter{client: client, logger: logger}
	a.SetToken(cfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed).
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter] via POST /api/register.
func (h *httpServerAdapter) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	var user models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&user).
		Post("/api/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Login implements [ServerAdapter] via POST /api/login. The token is taken
// from the response body, falling back to the Authorization header.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.Token, error) {
	var body models.TokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(credentials).
		SetResult(&body).
		Post("/api/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token := body.Token
	if token == "" {
		token, err = utils.ParseBearerToken(resp.Header().Get("Authorization"))
		if err != nil {
			return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
		}
	}

	h.SetToken(token)
	h.logger.Debug().Str("username", credentials.Username).Msg("logged in")

	return models.Token{SignedString: token}, nil
}

func (h *httpServerAdapter) CreateAuthor(ctx context.Context, author models.Author) (models.Author, error) {
	var created models.Author
	err := h.do(ctx, "create author", h.authedRequest(ctx).SetBody(author).SetResult(&created), resty.MethodPost, "/api/authors")
	return created, err
}

func (h *httpServerAdapter) ListAuthors(ctx context.Context) ([]models.Author, error) {
	authors := []models.Author{}
	err := h.do(ctx, "list authors", h.authedRequest(ctx).SetResult(&authors), resty.MethodGet, "/api/authors")
	return authors, err
}

func (h *httpServerAdapter) UpdateAuthor(ctx context.Context, id int64, patch models.AuthorPatch) (models.Author, error) {
	var updated models.Author
	err := h.do(ctx, "update author", h.authedRequest(ctx).SetBody(patch).SetResult(&updated), resty.MethodPut, authorPath(id))
	return updated, err
}

func (h *httpServerAdapter) DeleteAuthor(ctx context.Context, id int64) error {
	return h.do(ctx, "delete author", h.authedRequest(ctx), resty.MethodDelete, authorPath(id))
}

func (h *httpServerAdapter) CreateBook(ctx context.Context, book models.Book) (models.Book, error) {
	var created models.Book
	err := h.do(ctx, "create book", h.authedRequest(ctx).SetBody(book).SetResult(&created), resty.MethodPost, "/api/books")
	return created, err
}

func (h *httpServerAdapter) ListBooks(ctx context.Context) ([]models.Book, error) {
	books := []models.Book{}
	err := h.do(ctx, "list books", h.authedRequest(ctx).SetResult(&books), resty.MethodGet, "/api/books")
	return books, err
}

func (h *httpServerAdapter) UpdateBook(ctx context.Context, id int64, patch models.BookPatch) (models.Book, error) {
	var updated models.Book
	err := h.do(ctx, "update book", h.authedRequest(ctx).SetBody(patch).SetResult(&updated), resty.MethodPut, bookPath(id))
	return updated, err
}

func (h *httpServerAdapter) DeleteBook(ctx context.Context, id int64) error {
	return h.do(ctx, "delete book", h.authedRequest(ctx), resty.MethodDelete, bookPath(id))
}

// Version implements [ServerAdapter] via GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return resp.String(), nil
}

// Health implements [ServerAdapter] via GET /health.
func (h *httpServerAdapter) Health(ctx context.Context) error {
	return h.do(ctx, "health", h.client.R().SetContext(ctx), resty.MethodGet, "/health")
}

// authedRequest returns a request carrying the stored bearer token, if any.
func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}

// do executes req and maps a non-2xx answer to an *APIError.
func (h *httpServerAdapter) do(ctx context.Context, op string, req *resty.Request, method, path string) error {
	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s request: %w", op, err)
	}
	if err = mapHTTPError(resp); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("op", op).Msg("server rejected request")
		return err
	}

	return nil
}

func authorPath(id int64) string {
	return "/api/authors/" + strconv.FormatInt(id, 10)
}

func bookPath(id int64) string {
	return "/api/books/" + strconv.FormatInt(id, 10)
}
