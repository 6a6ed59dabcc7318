// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package about

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

func (repository *PostgresRepository) Get(context context.Context, adminID string) (*About, error) {
	query := `
		SELECT id, admin_id, title, subtitle, description, technologies, hobbies, goal, learning, created_at, updated_at
		FROM about
		WHERE admin_id = $1
	`

	a := &About{}
	err := repository.db.QueryRow(context, query, adminID).Scan(
		&a.ID, &a.AdminID, &a.Title, &a.Subtitle, &a.Description,
		&a.Technologies, &a.Hobbies, &a.Goal, &a.Learning, &a.CreatedAt, &a.UpdatedAt,
	)

	return a, dberr.Wrap(err, "get_about")
}

func (repository *PostgresRepository) Upsert(context context.Context, a *About) error {
	// One row per owner: admin_id carries a unique constraint, so a second
	// save turns into an in-place update and keeps the original id.
	query := `
		INSERT INTO about (id, admin_id, title, subtitle, description, technologies, hobbies, goal, learning, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW())
		ON CONFLICT (admin_id) DO UPDATE SET
			title = EXCLUDED.title,
			subtitle = EXCLUDED.subtitle,
			description = EXCLUDED.description,
			technologies = EXCLUDED.technologies,
			hobbies = EXCLUDED.hobbies,
			goal = EXCLUDED.goal,
			learning = EXCLUDED.learning,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		a.ID, a.AdminID, a.Title, a.Subtitle, a.Description,
		a.Technologies, a.Hobbies, a.Goal, a.Learning,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)

	return dberr.Wrap(err, "upsert_about")
}

func (repository *PostgresRepository) Delete(context context.Context, adminID string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM about WHERE admin_id = $1`, adminID)
	if err != nil {
		return dberr.Wrap(err, "delete_about")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
