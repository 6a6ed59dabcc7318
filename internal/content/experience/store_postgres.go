// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package experience

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhisheknv/portfolio-api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const experienceColumns = `id, admin_id, company, role, start_date, end_date, description, tech_used, created_at, updated_at`

func (repository *PostgresRepository) List(context context.Context, adminID string) ([]*Experience, error) {
	// Most recent role first. start_date is a display string, so the sort is
	// lexicographic; insertion time breaks ties.
	query := `
		SELECT ` + experienceColumns + `
		FROM experiences
		WHERE admin_id = $1
		ORDER BY start_date DESC, created_at DESC
	`

	rows, err := repository.db.Query(context, query, adminID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_experiences")
	}
	defer rows.Close()

	var entries []*Experience
	for rows.Next() {
		e := &Experience{}
		if err := rows.Scan(
			&e.ID, &e.AdminID, &e.Company, &e.Role, &e.StartDate, &e.EndDate,
			&e.Description, &e.TechUsed, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_experience")
		}
		entries = append(entries, e)
	}

	return entries, nil
}

func (repository *PostgresRepository) Get(context context.Context, adminID, id string) (*Experience, error) {
	query := `SELECT ` + experienceColumns + ` FROM experiences WHERE admin_id = $1 AND id = $2`

	e := &Experience{}
	err := repository.db.QueryRow(context, query, adminID, id).Scan(
		&e.ID, &e.AdminID, &e.Company, &e.Role, &e.StartDate, &e.EndDate,
		&e.Description, &e.TechUsed, &e.CreatedAt, &e.UpdatedAt,
	)

	return e, dberr.Wrap(err, "get_experience")
}

func (repository *PostgresRepository) Create(context context.Context, e *Experience) error {
	query := `
		INSERT INTO experiences (id, admin_id, company, role, start_date, end_date, description, tech_used, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		e.ID, e.AdminID, e.Company, e.Role, e.StartDate, e.EndDate, e.Description, e.TechUsed,
	).Scan(&e.CreatedAt, &e.UpdatedAt)

	return dberr.Wrap(err, "create_experience")
}

func (repository *PostgresRepository) Update(context context.Context, e *Experience) error {
	// Scoping by admin_id keeps one owner from touching another's rows.
	query := `
		UPDATE experiences
		SET company = $3, role = $4, start_date = $5, end_date = $6, description = $7, tech_used = $8, updated_at = NOW()
		WHERE admin_id = $1 AND id = $2
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		e.AdminID, e.ID, e.Company, e.Role, e.StartDate, e.EndDate, e.Description, e.TechUsed,
	).Scan(&e.CreatedAt, &e.UpdatedAt)

	return dberr.Wrap(err, "update_experience")
}

func (repository *PostgresRepository) Delete(context context.Context, adminID, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM experiences WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return dberr.Wrap(err, "delete_experience")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
