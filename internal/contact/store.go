// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package contact

import "context"

type Repository interface {
	List(context context.Context, adminID string, limit, offset int) ([]*Message, int, error)
	Get(context context.Context, adminID, id string) (*Message, error)
	Create(context context.Context, m *Message) error
	MarkRead(context context.Context, adminID, id string, read bool) (*Message, error)
	Delete(context context.Context, adminID, id string) error
}
