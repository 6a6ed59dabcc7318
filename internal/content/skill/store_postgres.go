// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package skill

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

const skillColumns = `id, admin_id, name, icon_url, created_at, updated_at`

func (repository *PostgresRepository) List(context context.Context, adminID string) ([]*Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE admin_id = $1 ORDER BY name ASC`

	rows, err := repository.db.Query(context, query, adminID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_skills")
	}
	defer rows.Close()

	var entries []*Skill
	for rows.Next() {
		s := &Skill{}
		if err := rows.Scan(&s.ID, &s.AdminID, &s.Name, &s.IconURL, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_skill")
		}
		entries = append(entries, s)
	}

	return entries, nil
}

func (repository *PostgresRepository) Get(context context.Context, adminID, id string) (*Skill, error) {
	query := `SELECT ` + skillColumns + ` FROM skills WHERE admin_id = $1 AND id = $2`

	s := &Skill{}
	err := repository.db.QueryRow(context, query, adminID, id).Scan(
		&s.ID, &s.AdminID, &s.Name, &s.IconURL, &s.CreatedAt, &s.UpdatedAt,
	)

	return s, dberr.Wrap(err, "get_skill")
}

func (repository *PostgresRepository) Create(context context.Context, s *Skill) error {
	query := `
		INSERT INTO skills (id, admin_id, name, icon_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query, s.ID, s.AdminID, s.Name, s.IconURL).
		Scan(&s.CreatedAt, &s.UpdatedAt)

	return dberr.Wrap(err, "create_skill")
}

func (repository *PostgresRepository) Update(context context.Context, s *Skill) error {
	query := `
		UPDATE skills
		SET name = $3, icon_url = $4, updated_at = NOW()
		WHERE admin_id = $1 AND id = $2
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query, s.AdminID, s.ID, s.Name, s.IconURL).
		Scan(&s.CreatedAt, &s.UpdatedAt)

	return dberr.Wrap(err, "update_skill")
}

func (repository *PostgresRepository) Delete(context context.Context, adminID, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM skills WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return dberr.Wrap(err, "delete_skill")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
