// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

// Package experience manages the owner's work history entries.
package experience

import "time"

// Experience represents a single role in the owner's work history.
//
// StartDate and EndDate are free-form display strings ("Jan 2023",
// "Present"), not timestamps: the portfolio renders them verbatim.
type Experience struct {
	ID          string    `json:"id"`
	AdminID     string    `json:"-"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	Description string    `json:"description,omitempty"`
	TechUsed    []string  `json:"tech_used"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EndDateOngoing is the display value for a role without an end date.
const EndDateOngoing = "Present"

const (
	FieldCompany     = "company"
	FieldRole        = "role"
	FieldStartDate   = "start_date"
	FieldEndDate     = "end_date"
	FieldDescription = "description"
	FieldTechUsed    = "tech_used"
)
