// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package project

import "context"

type Repository interface {
	List(context context.Context, adminID string, f Filter, limit, offset int) ([]*Project, int, error)
	Get(context context.Context, adminID, id string) (*Project, error)
	Create(context context.Context, p *Project) error
	Update(context context.Context, p *Project) error
	Delete(context context.Context, adminID, id string) error
}
