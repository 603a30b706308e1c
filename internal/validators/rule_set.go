// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-book-catalog/models"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Source tells a FieldRule where to look up its value.
type Source int

const (
	// SourceBody reads the field from the decoded JSON body.
	SourceBody Source = iota
	// SourcePath reads the field from the route's URL parameters.
	SourcePath
)

// FieldRule declares the constraints on one request field.
type FieldRule struct {
	Name   string
	Source Source

	// Optional fields are skipped when absent or null.
	Optional bool

	// Rules run in order; the first failing rule's message is reported.
	Rules []validation.Rule
}

// Input is what a RuleSet validates: the decoded body and the path
// parameters of one request.
type Input struct {
	Body   map[string]any
	Params map[string]string
}

// RuleSet is the ordered list of field rules of a single route.
type RuleSet struct {
	Name   string
	Fields []FieldRule
}

// HasBody reports whether any rule reads the request body.
func (rs *RuleSet) HasBody() bool {
	return slices.ContainsFunc(rs.Fields, func(f FieldRule) bool {
		return f.Source == SourceBody
	})
}

// Validate runs the rule set against input, which must be an [Input] or
// *[Input]. When fields are given only those rules run.
//
// All failures are accumulated in declaration order and returned as a
// *[FieldsError]. Other errors mean the rule set itself is misused.
func (rs *RuleSet) Validate(_ context.Context, input any, fields ...string) error {
	var in Input
	switch v := input.(type) {
	case Input:
		in = v
	case *Input:
		if v == nil {
			return ErrUnsupportedType
		}
		in = *v
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, input)
	}

	for _, name := range fields {
		if !slices.ContainsFunc(rs.Fields, func(f FieldRule) bool { return f.Name == name }) {
			return fmt.Errorf("%w: %s", ErrUnknownField, name)
		}
	}

	var failures []models.FieldError
	for _, rule := range rs.Fields {
		if len(fields) > 0 && !slices.Contains(fields, rule.Name) {
			continue
		}

		value, present := rule.lookup(in)
		if !present && rule.Optional {
			continue
		}

		if err := validation.Validate(value, rule.Rules...); err != nil {
			var ve validation.Error
			if !errors.As(err, &ve) {
				return fmt.Errorf("rule set %s, field %s: %w", rs.Name, rule.Name, err)
			}
			failures = append(failures, models.FieldError{Field: rule.Name, Message: ve.Message()})
		}
	}

	if len(failures) > 0 {
		return &FieldsError{Fields: failures}
	}

	return nil
}

func (f FieldRule) lookup(in Input) (any, bool) {
	switch f.Source {
	case SourcePath:
		v, ok := in.Params[f.Name]
		return v, ok && v != ""
	default:
		v, ok := in.Body[f.Name]
		return v, ok && v != nil
	}
}
