package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"retreat-backoffice/internal/model"
)

type SettingRepository struct {
	pool *pgxpool.Pool
}

func NewSettingRepository(pool *pgxpool.Pool) *SettingRepository {
	return &SettingRepository{pool: pool}
}

func (r *SettingRepository) Get(ctx context.Context, key string) (model.Setting, error) {
	var s model.Setting
	err := r.pool.QueryRow(ctx,
		`SELECT key, value, updated_at FROM settings WHERE key = $1`, key).
		Scan(&s.Key, &s.Value, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Setting{}, model.ErrSettingNotFound
	}
	if err != nil {
		return model.Setting{}, fmt.Errorf("get setting: %w", err)
	}
	return s, nil
}

// Set upserts; settings are a flat key/value table.
func (r *SettingRepository) Set(ctx context.Context, key string, value string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO settings (key, value, updated_at) VALUES ($1, $2, $3)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`,
		key, value, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("set setting: %w", err)
	}
	return nil
}

func (r *SettingRepository) List(ctx context.Context) ([]model.Setting, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT key, value, updated_at FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	settings := make([]model.Setting, 0)
	for rows.Next() {
		var s model.Setting
		if err := rows.Scan(&s.Key, &s.Value, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}
