// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

/*
Package about manages the portfolio's single "about me" section.

Unlike the other content resources this one is a singleton per owner: the
write path is an upsert, and reads return at most one row.
*/
package about

import "time"

// About represents the owner's self-description shown on the portfolio.
type About struct {
	ID           string    `json:"id"`
	AdminID      string    `json:"-"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle,omitempty"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Hobbies      []string  `json:"hobbies"`
	Goal         string    `json:"goal,omitempty"`
	Learning     string    `json:"learning,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	FieldTitle        = "title"
	FieldSubtitle     = "subtitle"
	FieldDescription  = "description"
	FieldTechnologies = "technologies"
	FieldHobbies      = "hobbies"
	FieldGoal         = "goal"
	FieldLearning     = "learning"
)
