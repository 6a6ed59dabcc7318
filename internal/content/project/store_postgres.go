// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package project

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abhisheknv/portfolio-api/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const projectColumns = `id, admin_id, title, description, technologies, type, image_url, project_link, created_at, updated_at`

func (repository *PostgresRepository) List(context context.Context, adminID string, f Filter, limit, offset int) ([]*Project, int, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE admin_id = $1`
	countQuery := `SELECT count(*) FROM projects WHERE admin_id = $1`

	args := []any{adminID}

	if f.Query != "" {
		searchTerm := "%" + f.Query + "%"
		args = append(args, searchTerm)
		clause := ` AND (title ILIKE $` + strconv.Itoa(len(args)) + ` OR description ILIKE $` + strconv.Itoa(len(args)) + `)`
		query += clause
		countQuery += clause
	}

	if f.Type != "" {
		args = append(args, f.Type)
		clause := ` AND type = $` + strconv.Itoa(len(args))
		query += clause
		countQuery += clause
	}

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_projects")
	}

	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_projects")
	}
	defer rows.Close()

	var entries []*Project
	for rows.Next() {
		p := &Project{}
		if err := rows.Scan(
			&p.ID, &p.AdminID, &p.Title, &p.Description, &p.Technologies,
			&p.Type, &p.ImageURL, &p.ProjectLink, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_project")
		}
		entries = append(entries, p)
	}

	return entries, total, nil
}

func (repository *PostgresRepository) Get(context context.Context, adminID, id string) (*Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE admin_id = $1 AND id = $2`

	p := &Project{}
	err := repository.db.QueryRow(context, query, adminID, id).Scan(
		&p.ID, &p.AdminID, &p.Title, &p.Description, &p.Technologies,
		&p.Type, &p.ImageURL, &p.ProjectLink, &p.CreatedAt, &p.UpdatedAt,
	)

	return p, dberr.Wrap(err, "get_project")
}

func (repository *PostgresRepository) Create(context context.Context, p *Project) error {
	query := `
		INSERT INTO projects (id, admin_id, title, description, technologies, type, image_url, project_link, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		p.ID, p.AdminID, p.Title, p.Description, p.Technologies, p.Type, p.ImageURL, p.ProjectLink,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	return dberr.Wrap(err, "create_project")
}

func (repository *PostgresRepository) Update(context context.Context, p *Project) error {
	query := `
		UPDATE projects
		SET title = $3, description = $4, technologies = $5, type = $6, image_url = $7, project_link = $8, updated_at = NOW()
		WHERE admin_id = $1 AND id = $2
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		p.AdminID, p.ID, p.Title, p.Description, p.Technologies, p.Type, p.ImageURL, p.ProjectLink,
	).Scan(&p.CreatedAt, &p.UpdatedAt)

	return dberr.Wrap(err, "update_project")
}

func (repository *PostgresRepository) Delete(context context.Context, adminID, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM projects WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return dberr.Wrap(err, "delete_project")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
