// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Field names shared by rule sets and handlers.
const (
	FieldID            = "id"
	FieldUsername      = "username"
	FieldPassword      = "password"
	FieldName          = "name"
	FieldBiography     = "biography"
	FieldDateOfBirth   = "dateOfBirth"
	FieldTitle         = "title"
	FieldISBN          = "isbn"
	FieldAuthorID      = "authorId"
	FieldPublishedDate = "publishedDate"
)

const (
	usernameMinLength = 3
	passwordMinLength = 6

	// passwordMaxBytes is the bcrypt input limit.
	passwordMaxBytes = 72
)

func idParam() FieldRule {
	return FieldRule{Name: FieldID, Source: SourcePath, Rules: []validation.Rule{
		IsIntParam.Error("ID must be an integer"),
	}}
}

func minLengthString(name string, min int, message string) FieldRule {
	return FieldRule{Name: name, Rules: []validation.Rule{
		IsString.Error(message),
		validation.Required.Error(message),
		validation.RuneLength(min, 0).Error(message),
	}}
}

func requiredString(name, message string) FieldRule {
	return FieldRule{Name: name, Rules: []validation.Rule{
		IsString.Error(message),
		validation.Required.Error(message),
	}}
}

func typed(name string, optional bool, rule typeRule, message string) FieldRule {
	return FieldRule{Name: name, Optional: optional, Rules: []validation.Rule{rule.Error(message)}}
}

// RegisterRules validates POST /api/register.
func RegisterRules() *RuleSet {
	password := minLengthString(FieldPassword, passwordMinLength, "Password must be at least 6 characters long")
	password.Rules = append(password.Rules,
		validation.Length(0, passwordMaxBytes).Error("Password must be at most 72 bytes"))

	return &RuleSet{Name: "register", Fields: []FieldRule{
		minLengthString(FieldUsername, usernameMinLength, "Username must be at least 3 characters long"),
		password,
	}}
}

// LoginRules validates POST /api/login.
func LoginRules() *RuleSet {
	return &RuleSet{Name: "login", Fields: []FieldRule{
		requiredString(FieldUsername, "Username is required"),
		requiredString(FieldPassword, "Password is required"),
	}}
}

// CreateAuthorRules validates POST /api/authors.
func CreateAuthorRules() *RuleSet {
	return &RuleSet{Name: "create author", Fields: []FieldRule{
		typed(FieldName, false, IsString, "Name must be a string"),
		typed(FieldBiography, true, IsString, "Biography must be a string"),
		typed(FieldDateOfBirth, false, IsDate, "Date of Birth must be a valid date"),
	}}
}

// UpdateAuthorRules validates PUT /api/authors/{id}. Every body field is
// optional.
func UpdateAuthorRules() *RuleSet {
	return &RuleSet{Name: "update author", Fields: []FieldRule{
		idParam(),
		typed(FieldName, true, IsString, "Name must be a string"),
		typed(FieldBiography, true, IsString, "Biography must be a string"),
		typed(FieldDateOfBirth, true, IsDate, "Date of Birth must be a valid date"),
	}}
}

// DeleteAuthorRules validates DELETE /api/authors/{id}.
func DeleteAuthorRules() *RuleSet {
	return &RuleSet{Name: "delete author", Fields: []FieldRule{idParam()}}
}

// CreateBookRules validates POST /api/books.
func CreateBookRules() *RuleSet {
	return &RuleSet{Name: "create book", Fields: []FieldRule{
		typed(FieldTitle, false, IsString, "Title must be a string"),
		typed(FieldISBN, false, IsString, "ISBN must be a string"),
		typed(FieldAuthorID, false, IsInt, "Author ID must be an integer"),
		typed(FieldPublishedDate, true, IsDate, "Published date must be a valid date"),
	}}
}

// UpdateBookRules validates PUT /api/books/{id}. Every body field is
// optional.
func UpdateBookRules() *RuleSet {
	return &RuleSet{Name: "update book", Fields: []FieldRule{
		idParam(),
		typed(FieldTitle, true, IsString, "Title must be a string"),
		typed(FieldISBN, true, IsString, "ISBN must be a string"),
		typed(FieldAuthorID, true, IsInt, "Author ID must be an integer"),
		typed(FieldPublishedDate, true, IsDate, "Published date must be a valid date"),
	}}
}

// DeleteBookRules validates DELETE /api/books/{id}.
func DeleteBookRules() *RuleSet {
	return &RuleSet{Name: "delete book", Fields: []FieldRule{idParam()}}
}
