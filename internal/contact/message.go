// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

/*
Package contact implements the public contact intake pipeline.

A visitor submission is validated, persisted under the owning admin, and
then fanned out to the notification channels (email, WhatsApp). Persistence
is authoritative: once the row is stored the request succeeds even if every
notification channel fails.
*/
package contact

import "time"

// Message represents a visitor's contact submission.
type Message struct {
	ID        string    `json:"id"`
	AdminID   string    `json:"-"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Contact   string    `json:"contact"`
	Body      string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldContact = "contact"
	FieldMessage = "message"
)
