// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package blog

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

const blogColumns = `id, admin_id, title, slug, description, content, image_url, created_at, updated_at`

func (repository *PostgresRepository) List(context context.Context, adminID string, f Filter, limit, offset int) ([]*Blog, int, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE admin_id = $1`
	countQuery := `SELECT count(*) FROM blogs WHERE admin_id = $1`

	args := []any{adminID}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		clause := ` AND (title ILIKE $` + strconv.Itoa(len(args)) + ` OR description ILIKE $` + strconv.Itoa(len(args)) + `)`
		query += clause
		countQuery += clause
	}

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_blogs")
	}

	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_blogs")
	}
	defer rows.Close()

	var entries []*Blog
	for rows.Next() {
		b := &Blog{}
		if err := rows.Scan(
			&b.ID, &b.AdminID, &b.Title, &b.Slug, &b.Description,
			&b.Content, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_blog")
		}
		entries = append(entries, b)
	}

	return entries, total, nil
}

func (repository *PostgresRepository) Get(context context.Context, adminID, id string) (*Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE admin_id = $1 AND id = $2`

	b := &Blog{}
	err := repository.db.QueryRow(context, query, adminID, id).Scan(
		&b.ID, &b.AdminID, &b.Title, &b.Slug, &b.Description,
		&b.Content, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt,
	)

	return b, dberr.Wrap(err, "get_blog")
}

func (repository *PostgresRepository) GetBySlug(context context.Context, adminID, slug string) (*Blog, error) {
	query := `SELECT ` + blogColumns + ` FROM blogs WHERE admin_id = $1 AND slug = $2`

	b := &Blog{}
	err := repository.db.QueryRow(context, query, adminID, slug).Scan(
		&b.ID, &b.AdminID, &b.Title, &b.Slug, &b.Description,
		&b.Content, &b.ImageURL, &b.CreatedAt, &b.UpdatedAt,
	)

	return b, dberr.Wrap(err, "get_blog_by_slug")
}

func (repository *PostgresRepository) Create(context context.Context, b *Blog) error {
	// blogs carries a unique index on (admin_id, slug); the service handles
	// the resulting Conflict by re-slugging.
	query := `
		INSERT INTO blogs (id, admin_id, title, slug, description, content, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		b.ID, b.AdminID, b.Title, b.Slug, b.Description, b.Content, b.ImageURL,
	).Scan(&b.CreatedAt, &b.UpdatedAt)

	return dberr.Wrap(err, "create_blog")
}

func (repository *PostgresRepository) Update(context context.Context, b *Blog) error {
	query := `
		UPDATE blogs
		SET title = $3, description = $4, content = $5, image_url = $6, updated_at = NOW()
		WHERE admin_id = $1 AND id = $2
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		b.AdminID, b.ID, b.Title, b.Description, b.Content, b.ImageURL,
	).Scan(&b.CreatedAt, &b.UpdatedAt)

	return dberr.Wrap(err, "update_blog")
}

func (repository *PostgresRepository) Delete(context context.Context, adminID, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM blogs WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return dberr.Wrap(err, "delete_blog")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
