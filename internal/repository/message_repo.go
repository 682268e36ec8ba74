package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"retreat-backoffice/internal/model"
)

type MessageRepository struct {
	pool *pgxpool.Pool
}

func NewMessageRepository(pool *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{pool: pool}
}

const messageColumns = `id, name, email, subject, body, read, created_at`

func scanMessage(row pgx.Row) (model.Message, error) {
	var m model.Message
	err := row.Scan(&m.ID, &m.Name, &m.Email, &m.Subject, &m.Body, &m.Read, &m.CreatedAt)
	return m, err
}

func (r *MessageRepository) FindByID(ctx context.Context, id string) (model.Message, error) {
	m, err := scanMessage(r.pool.QueryRow(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Message{}, model.ErrMessageNotFound
	}
	if err != nil {
		return model.Message{}, fmt.Errorf("find message by id: %w", err)
	}
	return m, nil
}

func (r *MessageRepository) Create(ctx context.Context, m model.Message) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO messages (id, name, email, subject, body, read, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Name, m.Email, m.Subject, m.Body, m.Read, m.CreatedAt)
	if err != nil {
		return fmt.Errorf("create message: %w", err)
	}
	return nil
}

func (r *MessageRepository) MarkRead(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE messages SET read = true WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("mark message read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrMessageNotFound
	}
	return nil
}

func (r *MessageRepository) List(ctx context.Context) ([]model.Message, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+messageColumns+` FROM messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]model.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

func (r *MessageRepository) CountUnread(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM messages WHERE read = false`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread messages: %w", err)
	}
	return count, nil
}
