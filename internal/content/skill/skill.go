// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

// Package skill manages the owner's skill badges.
package skill

import "time"

// Skill represents a single technology badge rendered on the portfolio.
type Skill struct {
	ID        string    `json:"id"`
	AdminID   string    `json:"-"`
	Name      string    `json:"name"`
	IconURL   string    `json:"icon_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	FieldName    = "name"
	FieldIconURL = "icon_url"
)
