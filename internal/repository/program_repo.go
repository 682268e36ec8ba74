package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"retreat-backoffice/internal/model"
)

type ProgramRepository struct {
	pool *pgxpool.Pool
}

func NewProgramRepository(pool *pgxpool.Pool) *ProgramRepository {
	return &ProgramRepository{pool: pool}
}

const programColumns = `id, name, description, duration, price_cents, active, created_at, updated_at`

func scanProgram(row pgx.Row) (model.Program, error) {
	var p model.Program
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Duration, &p.PriceCents,
		&p.Active, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *ProgramRepository) FindByID(ctx context.Context, id string) (model.Program, error) {
	p, err := scanProgram(r.pool.QueryRow(ctx,
		`SELECT `+programColumns+` FROM programs WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Program{}, model.ErrProgramNotFound
	}
	if err != nil {
		return model.Program{}, fmt.Errorf("find program by id: %w", err)
	}
	return p, nil
}

func (r *ProgramRepository) Create(ctx context.Context, p model.Program) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO programs (id, name, description, duration, price_cents, active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		p.ID, p.Name, p.Description, p.Duration, p.PriceCents, p.Active, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create program: %w", err)
	}
	return nil
}

func (r *ProgramRepository) Update(ctx context.Context, p model.Program) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE programs SET name = $2, description = $3, duration = $4, price_cents = $5, active = $6, updated_at = $7
		 WHERE id = $1`,
		p.ID, p.Name, p.Description, p.Duration, p.PriceCents, p.Active, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProgramNotFound
	}
	return nil
}

func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM programs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete program: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrProgramNotFound
	}
	return nil
}

func (r *ProgramRepository) List(ctx context.Context, activeOnly bool) ([]model.Program, error) {
	query := `SELECT ` + programColumns + ` FROM programs ORDER BY name`
	if activeOnly {
		query = `SELECT ` + programColumns + ` FROM programs WHERE active = true ORDER BY name`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	programs := make([]model.Program, 0)
	for rows.Next() {
		p, err := scanProgram(rows)
		if err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		programs = append(programs, p)
	}
	return programs, rows.Err()
}
