// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package about

import "context"

type Repository interface {
	Get(context context.Context, adminID string) (*About, error)
	Upsert(context context.Context, a *About) error
	Delete(context context.Context, adminID string) error
}
