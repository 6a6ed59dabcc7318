// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package course

import "context"

type Repository interface {
	List(context context.Context, adminID string, f Filter, limit, offset int) ([]*Course, int, error)
	Get(context context.Context, adminID, id string) (*Course, error)
	Create(context context.Context, c *Course) error
	Update(context context.Context, c *Course) error
	Delete(context context.Context, adminID, id string) error
}
