package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"retreat-backoffice/internal/model"
)

type ReservationRepository struct {
	pool *pgxpool.Pool
}

func NewReservationRepository(pool *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{pool: pool}
}

const reservationColumns = `id, program_id, name, email, phone, date, status, notes, created_at, updated_at`

func scanReservation(row pgx.Row) (model.Reservation, error) {
	var res model.Reservation
	err := row.Scan(&res.ID, &res.ProgramID, &res.Name, &res.Email, &res.Phone,
		&res.Date, &res.Status, &res.Notes, &res.CreatedAt, &res.UpdatedAt)
	return res, err
}

func (r *ReservationRepository) FindByID(ctx context.Context, id string) (model.Reservation, error) {
	res, err := scanReservation(r.pool.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Reservation{}, model.ErrReservationNotFound
	}
	if err != nil {
		return model.Reservation{}, fmt.Errorf("find reservation by id: %w", err)
	}
	return res, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res model.Reservation) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO reservations (id, program_id, name, email, phone, date, status, notes, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		res.ID, res.ProgramID, res.Name, res.Email, res.Phone, res.Date, res.Status,
		res.Notes, res.CreatedAt, res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, res model.Reservation) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE reservations SET status = $2, notes = $3, updated_at = $4 WHERE id = $1`,
		res.ID, res.Status, res.Notes, res.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete reservation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrReservationNotFound
	}
	return nil
}

func (r *ReservationRepository) List(ctx context.Context) ([]model.Reservation, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+reservationColumns+` FROM reservations ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]model.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, res)
	}
	return reservations, rows.Err()
}
