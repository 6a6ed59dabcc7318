// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package admins

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhisheknv/portfolio-api/internal/platform/dberr"
)

// PostgresRepository persists admin identities in the admins table.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const adminColumns = `id, name, email, password_hash, contact, profile_pic_url, created_at, updated_at`

func (repository *PostgresRepository) Create(context context.Context, admin *Admin) error {
	query := `
		INSERT INTO admins (id, name, email, password_hash, contact, profile_pic_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		admin.ID, admin.Name, admin.Email, admin.PasswordHash, admin.Contact, admin.ProfilePicURL,
	).Scan(&admin.CreatedAt, &admin.UpdatedAt)

	return dberr.Wrap(err, "create_admin")
}

func (repository *PostgresRepository) FindByEmail(context context.Context, email string) (*Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE email = $1`

	admin := &Admin{}
	err := repository.db.QueryRow(context, query, email).Scan(
		&admin.ID, &admin.Name, &admin.Email, &admin.PasswordHash,
		&admin.Contact, &admin.ProfilePicURL, &admin.CreatedAt, &admin.UpdatedAt,
	)

	return admin, dberr.Wrap(err, "find_admin_by_email")
}

func (repository *PostgresRepository) FindByID(context context.Context, id string) (*Admin, error) {
	query := `SELECT ` + adminColumns + ` FROM admins WHERE id = $1`

	admin := &Admin{}
	err := repository.db.QueryRow(context, query, id).Scan(
		&admin.ID, &admin.Name, &admin.Email, &admin.PasswordHash,
		&admin.Contact, &admin.ProfilePicURL, &admin.CreatedAt, &admin.UpdatedAt,
	)

	return admin, dberr.Wrap(err, "find_admin_by_id")
}

func (repository *PostgresRepository) Update(context context.Context, admin *Admin) error {
	query := `
		UPDATE admins
		SET name = $2, email = $3, password_hash = $4, contact = $5, profile_pic_url = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := repository.db.QueryRow(context, query,
		admin.ID, admin.Name, admin.Email, admin.PasswordHash, admin.Contact, admin.ProfilePicURL,
	).Scan(&admin.UpdatedAt)

	return dberr.Wrap(err, "update_admin")
}

func (repository *PostgresRepository) IdentityExists(context context.Context, adminID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM admins WHERE id = $1)`

	var exists bool
	if err := repository.db.QueryRow(context, query, adminID).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "admin_identity_exists")
	}

	return exists, nil
}
