// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport layer of the book catalog.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as request tracing, access logging, panic
// recovery, authentication, and request validation are handled in this
// package before requests are delegated to the service layer.
//
// Handlers return errors instead of writing failures themselves; every
// error ends in [Handler.renderError], which picks the status code and the
// JSON body.
package http
