// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package blog

import "context"

type Repository interface {
	List(context context.Context, adminID string, f Filter, limit, offset int) ([]*Blog, int, error)
	Get(context context.Context, adminID, id string) (*Blog, error)
	GetBySlug(context context.Context, adminID, slug string) (*Blog, error)
	Create(context context.Context, b *Blog) error
	Update(context context.Context, b *Blog) error
	Delete(context context.Context, adminID, id string) error
}
