// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Book is a catalog book. AuthorID is nil once its author has been deleted.
type Book struct {
	ID            int64     `json:"id"`
	Title         string    `json:"title"`
	ISBN          string    `json:"isbn"`
	PublishedDate *Date     `json:"publishedDate"`
	AuthorID      *int64    `json:"authorId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Book model.
func (b Book) TableName() string {
	return "books"
}

// BookPatch is a partial update of a Book. Nil fields are left unchanged.
type BookPatch struct {
	Title         *string `json:"title,omitempty"`
	ISBN          *string `json:"isbn,omitempty"`
	PublishedDate *Date   `json:"publishedDate,omitempty"`
	AuthorID      *int64  `json:"authorId,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p BookPatch) IsEmpty() bool {
	return p.Title == nil && p.ISBN == nil && p.PublishedDate == nil && p.AuthorID == nil
}

// Apply returns a copy of b with the patch applied.
func (p BookPatch) Apply(b Book) Book {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.ISBN != nil {
		b.ISBN = *p.ISBN
	}
	if p.PublishedDate != nil {
		b.PublishedDate = p.PublishedDate
	}
	if p.AuthorID != nil {
		b.AuthorID = p.AuthorID
	}

	return b
}
