// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Author is a catalog author.
type Author struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Biography   *string   `json:"biography"`
	DateOfBirth *Date     `json:"dateOfBirth"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Author model.
func (a Author) TableName() string {
	return "authors"
}

// AuthorPatch is a partial update of an Author. Nil fields are left
// unchanged.
type AuthorPatch struct {
	Name        *string `json:"name,omitempty"`
	Biography   *string `json:"biography,omitempty"`
	DateOfBirth *Date   `json:"dateOfBirth,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p AuthorPatch) IsEmpty() bool {
	return p.Name == nil && p.Biography == nil && p.DateOfBirth == nil
}

// Apply returns a copy of a with the patch applied.
func (p AuthorPatch) Apply(a Author) Author {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Biography != nil {
		a.Biography = p.Biography
	}
	if p.DateOfBirth != nil {
		a.DateOfBirth = p.DateOfBirth
	}

	return a
}
