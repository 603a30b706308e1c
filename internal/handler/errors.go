// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoHandlersAreCreated means the server config names no HTTP and no gRPC
// address.
var errNoHandlersAreCreated = errors.New("no handlers are created")
