// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

/*
Package admins implements the portfolio owner's identity layer.

It defines the Admin entity and the logic for enrollment, credential
verification, and profile maintenance. Every authored resource in the
system (projects, blogs, contact messages, ...) hangs off an Admin ID,
so this package is the root of the ownership model.

# Architecture

  - Service: Orchestrates business logic (Signup, Login, Profile).
  - Repository: Abstracted interface over Postgres.
  - Security: Bcrypt password hashing and HS256-signed JWTs via [sec].
*/
package admins

import "time"

// # Domain Entities

// Admin represents a portfolio owner with dashboard access.
type Admin struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	PasswordHash  string    `json:"-"` // Explicitly omitted from JSON for security.
	Contact       string    `json:"contact,omitempty"`
	ProfilePicURL string    `json:"profile_pic_url,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the admin domain.
const (
	FieldName          = "name"
	FieldEmail         = "email"
	FieldPassword      = "password"
	FieldContact       = "contact"
	FieldProfilePicURL = "profile_pic_url"
	FieldToken         = "token"
)
