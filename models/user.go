// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is a registered account. It is created on registration and never
// updated or deleted.
type User struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`

	// PasswordHash is the bcrypt hash of the user's password. It never
	// leaves the server.
	PasswordHash string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Credentials is the body of the register and login requests.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
