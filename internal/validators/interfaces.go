// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators implements declarative, per-route request validation.
//
// A [RuleSet] is an ordered list of [FieldRule]s, each naming a body or path
// field and the ozzo-validation rules it must satisfy. Evaluating a rule set
// runs every field and collects all failures, so a client learns about every
// problem in one round trip. Rule sets perform no I/O.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
