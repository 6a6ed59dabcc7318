// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package experience

import "context"

type Repository interface {
	List(context context.Context, adminID string) ([]*Experience, error)
	Get(context context.Context, adminID, id string) (*Experience, error)
	Create(context context.Context, e *Experience) error
	Update(context context.Context, e *Experience) error
	Delete(context context.Context, adminID, id string) error
}
