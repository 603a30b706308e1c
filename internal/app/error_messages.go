// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// book catalog server handlers and middleware.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies to describe the outcome of an operation. Keeping them
// in one place ensures consistent wording throughout the API.
package app

const (
	// MsgValidationFailed heads every 400 response produced by the
	// validation middleware; the individual failures follow in "errors".
	MsgValidationFailed = "Validation failed"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or a path parameter is not a valid id.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgUsernameTaken is returned when registering an existing username.
	MsgUsernameTaken = "Username already exists"

	// MsgInvalidCredentials is returned for an unknown username as well as
	// for a wrong password.
	MsgInvalidCredentials = "Invalid username or password"

	// MsgUnauthorized is returned when a protected route is called without
	// a bearer token.
	MsgUnauthorized = "Unauthorized"

	// MsgInvalidToken is returned when the bearer token fails verification.
	MsgInvalidToken = "Invalid token"

	MsgAuthorNotFound = "Author not found"
	MsgBookNotFound   = "Book not found"

	MsgRouteNotFound    = "Not found"
	MsgMethodNotAllowed = "Method not allowed"

	// MsgInvalidJSONBody is the field message reported when the request body
	// is not a JSON object.
	MsgInvalidJSONBody = "Request body must be a JSON object"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgServiceUnavailable is reported by the health endpoint when the
	// database does not answer.
	MsgServiceUnavailable = "unavailable"
)
