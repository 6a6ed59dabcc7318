// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package skill

import "context"

type Repository interface {
	List(context context.Context, adminID string) ([]*Skill, error)
	Get(context context.Context, adminID, id string) (*Skill, error)
	Create(context context.Context, s *Skill) error
	Update(context context.Context, s *Skill) error
	Delete(context context.Context, adminID, id string) error
}
