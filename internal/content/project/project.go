// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

// Package project manages the owner's showcased projects.
package project

import "time"

// Project represents a single portfolio entry with its stack and links.
type Project struct {
	ID           string    `json:"id"`
	AdminID      string    `json:"-"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Type         string    `json:"type"`
	ImageURL     string    `json:"image_url,omitempty"`
	ProjectLink  string    `json:"project_link,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated project search.
type Filter struct {
	Query string // Case-insensitive match against title and description
	Type  string // Exact match against the project type
}

// Recognised project types.
const (
	TypeFullStack = "Full Stack"
	TypeFrontend  = "Frontend"
	TypeBackend   = "Backend"
)

const (
	FieldTitle        = "title"
	FieldDescription  = "description"
	FieldTechnologies = "technologies"
	FieldType         = "type"
	FieldImageURL     = "image_url"
	FieldProjectLink  = "project_link"
)
