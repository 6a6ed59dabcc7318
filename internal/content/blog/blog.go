// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

/*
Package blog manages the owner's published blog posts.

Posts carry a URL slug derived from the title at creation time; the public
site addresses posts by slug, the dashboard by id.
*/
package blog

import "time"

// Blog represents a single published post.
type Blog struct {
	ID          string    `json:"id"`
	AdminID     string    `json:"-"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated post search.
type Filter struct {
	Query string // Case-insensitive match against title and description
}

const (
	FieldTitle       = "title"
	FieldSlug        = "slug"
	FieldDescription = "description"
	FieldContent     = "content"
	FieldImageURL    = "image_url"
)
