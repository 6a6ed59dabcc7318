// Copyright (c) 2026 Abhishek Portfolio. All rights reserved.
// Author: abhishek.nv.dev@gmail.com

package contact

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

const messageColumns = `id, admin_id, name, email, contact, message, read, created_at, updated_at`

func (repository *PostgresRepository) List(context context.Context, adminID string, limit, offset int) ([]*Message, int, error) {
	var total int
	countQuery := `SELECT count(*) FROM contact_messages WHERE admin_id = $1`
	if err := repository.db.QueryRow(context, countQuery, adminID).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_contact_messages")
	}

	query := `
		SELECT ` + messageColumns + `
		FROM contact_messages
		WHERE admin_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := repository.db.Query(context, query, adminID, limit, offset)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_contact_messages")
	}
	defer rows.Close()

	var messages []*Message
	for rows.Next() {
		m := &Message{}
		if err := rows.Scan(
			&m.ID, &m.AdminID, &m.Name, &m.Email, &m.Contact,
			&m.Body, &m.Read, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, 0, dberr.Wrap(err, "scan_contact_message")
		}
		messages = append(messages, m)
	}

	return messages, total, nil
}

func (repository *PostgresRepository) Get(context context.Context, adminID, id string) (*Message, error) {
	query := `SELECT ` + messageColumns + ` FROM contact_messages WHERE admin_id = $1 AND id = $2`

	m := &Message{}
	err := repository.db.QueryRow(context, query, adminID, id).Scan(
		&m.ID, &m.AdminID, &m.Name, &m.Email, &m.Contact,
		&m.Body, &m.Read, &m.CreatedAt, &m.UpdatedAt,
	)

	return m, dberr.Wrap(err, "get_contact_message")
}

func (repository *PostgresRepository) Create(context context.Context, m *Message) error {
	query := `
		INSERT INTO contact_messages (id, admin_id, name, email, contact, message, read, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, FALSE, NOW(), NOW())
		RETURNING read, created_at, updated_at
	`

	err := repository.db.QueryRow(context, query,
		m.ID, m.AdminID, m.Name, m.Email, m.Contact, m.Body,
	).Scan(&m.Read, &m.CreatedAt, &m.UpdatedAt)

	return dberr.Wrap(err, "create_contact_message")
}

func (repository *PostgresRepository) MarkRead(context context.Context, adminID, id string, read bool) (*Message, error) {
	// Idempotent: setting the flag to its current value refreshes nothing.
	query := `
		UPDATE contact_messages
		SET read = $3, updated_at = CASE WHEN read = $3 THEN updated_at ELSE NOW() END
		WHERE admin_id = $1 AND id = $2
		RETURNING ` + messageColumns + `
	`

	m := &Message{}
	err := repository.db.QueryRow(context, query, adminID, id, read).Scan(
		&m.ID, &m.AdminID, &m.Name, &m.Email, &m.Contact,
		&m.Body, &m.Read, &m.CreatedAt, &m.UpdatedAt,
	)

	return m, dberr.Wrap(err, "mark_contact_message_read")
}

func (repository *PostgresRepository) Delete(context context.Context, adminID, id string) error {
	cmd, err := repository.db.Exec(context, `DELETE FROM contact_messages WHERE admin_id = $1 AND id = $2`, adminID, id)
	if err != nil {
		return dberr.Wrap(err, "delete_contact_message")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
