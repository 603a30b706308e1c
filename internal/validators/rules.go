// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/MKhiriev/go-book-catalog/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// typeRule is an ozzo rule that, unlike the built-in rules, also fails on
// nil so that a missing required field is reported with the type message.
type typeRule struct {
	check func(any) bool
	err   validation.Error
}

func (r typeRule) Validate(value any) error {
	if !r.check(value) {
		return r.err
	}
	return nil
}

// Error sets the message returned when the rule fails.
func (r typeRule) Error(message string) typeRule {
	r.err = r.err.SetMessage(message)
	return r
}

// IsString accepts JSON strings.
var IsString = typeRule{
	check: func(v any) bool {
		_, ok := v.(string)
		return ok
	},
	err: validation.NewError("validation_is_string", "must be a string"),
}

// IsInt accepts integral JSON numbers. Numeric strings are rejected.
var IsInt = typeRule{
	check: isInt,
	err:   validation.NewError("validation_is_int", "must be an integer"),
}

// IsIntParam accepts decimal integers given as text, as in path parameters.
var IsIntParam = typeRule{
	check: func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, err := strconv.ParseInt(s, 10, 64)
		return err == nil
	},
	err: validation.NewError("validation_is_int", "must be an integer"),
}

// IsDate accepts "YYYY-MM-DD" and "YYYY/MM/DD" strings.
var IsDate = typeRule{
	check: func(v any) bool {
		s, ok := v.(string)
		if !ok {
			return false
		}
		_, err := models.ParseDate(s)
		return err == nil
	},
	err: validation.NewError("validation_is_date", "must be a valid date"),
}

func isInt(v any) bool {
	switch n := v.(type) {
	case json.Number:
		_, err := n.Int64()
		return err == nil
	case float64:
		return n == math.Trunc(n) && !math.IsInf(n, 0)
	case int, int64:
		return true
	default:
		return false
	}
}
