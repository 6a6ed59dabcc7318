// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package admins

import "context"

// Repository abstracts persistent storage of admin identities.
type Repository interface {
	Create(context context.Context, admin *Admin) error
	FindByEmail(context context.Context, email string) (*Admin, error)
	FindByID(context context.Context, id string) (*Admin, error)
	Update(context context.Context, admin *Admin) error

	// IdentityExists reports whether the admin row is still present. The
	// session gate calls this on every authenticated request so a deleted
	// identity invalidates outstanding tokens immediately.
	IdentityExists(context context.Context, adminID string) (bool, error)
}
