// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package course

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

const courseColumns = `id, admin_id, title, description, price, discount, image_url, created_at, updated_at`

func (repository *PostgresRepository) List(context context.Context, adminID string, f Filter, limit, offset int) ([]*Course, int, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE admin_id = $1`
	countQuery := `SELECT count(*) FROM courses WHERE admin_id = $1`

	args := []any{adminID}

	if f.Query != "" {
		args = append(args, "%"+f.Query+"%")
		clause := ` AND (title ILIKE $` + strconv.Itoa(len(args)) + ` OR description ILIKE $` + strconv.Itoa(len(args)) + `)`
		query += clause
		countQuery += clause
	}

	if f.MinPrice != nil {
		args = append(args, *f.MinPrice)
		clause := ` AND price >= $` + strconv.Itoa(len(args))
		query += clause
		countQuery += clause
	}

	if f.MaxPrice != nil {
		args = append(args, *f.MaxPrice)
		clause := ` AND price <= $` + strconv.Itoa(len(args))
		query += clause
		countQuery += clause
	}

	var total int
	if err := repository.db.QueryRow(context, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_courses")
	}

	query += ` ORDER BY created_at DESC LIMIT $` + strconv.Itoa(len(args)+1) + ` OFFSET $` + strconv.Itoa(len(args)+2)
	args = append(args, limit, offset)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_courses")
	}
	defer rows.Close()

	var entries []*Course
	for rows.Next() {
		c := &Course{}
		if err := rows.Scan(
			&c.ID, &c.AdminID, &c.Title, &c.Description, &c.Price,
			&c.Discount, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_course")
		}
		entries = append(entries, c)
	}

	return entries, total, nil
}

func (repository *PostgresRepository) Get(context context.Context, adminID, id string) (*Course, error) {
	query := `SELECT ` + courseColumns + ` FROM courses WHERE admin_id = $1 AND id = $2`

	c := &Course{}
	err := repository.db.QueryRow(context, query, adminID, id).Scan(
		&c.ID, &c.AdminID, &c.Title, &c.Description, &c.Price,
		&c.Discount, &c.ImageURL, &c.CreatedAt, &c.UpdatedAt,
	)

	return c, dberr.Wrap(err, "get_course")
}

func (repository *PostgresRepository) Create(context context.Context, c *Course) error {
	query := `
		INSERT INTO courses (id, admin_id, title, description, price, discount, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		c.ID, c.AdminID, c.Title, c.Description, c.Price, c.Discount, c.ImageURL,
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	return dberr.Wrap(err, "create_course")
}

func (repository *PostgresRepository) Update(context context.Context, c *Course) error {
	query := `
		UPDATE courses
		SET title = $3, description = $4, price = $5, discount = $6, image_url = $7, updated_at = NOW()
		WHERE admin_id = $1 AND id = $2
		RETURNING created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		c.AdminID, c.ID, c.Title, c.Description, c.Price, c.Discount, c.ImageURL,
	).Scan(&c.CreatedAt, &c.UpdatedAt)

	return dberr.Wrap(err, "update_course")
}

func (repository *PostgresRepository) Delete(context context.Context, adminID, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM courses WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return dberr.Wrap(err, "delete_course")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
