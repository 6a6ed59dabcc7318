// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

// Package course manages the owner's published courses.
package course

import "time"

// Course represents a purchasable course listed on the portfolio.
type Course struct {
	ID          string    `json:"id"`
	AdminID     string    `json:"-"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Discount    float64   `json:"discount"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Filter holds the parameters for a paginated course search.
//
// MinPrice and MaxPrice bound the listed price; nil means unbounded.
type Filter struct {
	Query    string
	MinPrice *float64
	MaxPrice *float64
}

const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPrice       = "price"
	FieldDiscount    = "discount"
	FieldImageURL    = "image_url"
)
