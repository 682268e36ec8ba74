package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"retreat-backoffice/internal/model"
)

type TestimonialRepository struct {
	pool *pgxpool.Pool
}

func NewTestimonialRepository(pool *pgxpool.Pool) *TestimonialRepository {
	return &TestimonialRepository{pool: pool}
}

const testimonialColumns = `id, author, quote, rating, approved, created_at, updated_at`

func scanTestimonial(row pgx.Row) (model.Testimonial, error) {
	var t model.Testimonial
	err := row.Scan(&t.ID, &t.Author, &t.Quote, &t.Rating, &t.Approved, &t.CreatedAt, &t.UpdatedAt)
	return t, err
}

func (r *TestimonialRepository) FindByID(ctx context.Context, id string) (model.Testimonial, error) {
	t, err := scanTestimonial(r.pool.QueryRow(ctx,
		`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Testimonial{}, model.ErrTestimonialNotFound
	}
	if err != nil {
		return model.Testimonial{}, fmt.Errorf("find testimonial by id: %w", err)
	}
	return t, nil
}

func (r *TestimonialRepository) Create(ctx context.Context, t model.Testimonial) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO testimonials (id, author, quote, rating, approved, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		t.ID, t.Author, t.Quote, t.Rating, t.Approved, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create testimonial: %w", err)
	}
	return nil
}

func (r *TestimonialRepository) Update(ctx context.Context, t model.Testimonial) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE testimonials SET author = $2, quote = $3, rating = $4, approved = $5, updated_at = $6
		 WHERE id = $1`,
		t.ID, t.Author, t.Quote, t.Rating, t.Approved, t.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTestimonialNotFound
	}
	return nil
}

func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrTestimonialNotFound
	}
	return nil
}

func (r *TestimonialRepository) List(ctx context.Context, approvedOnly bool) ([]model.Testimonial, error) {
	query := `SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY created_at DESC`
	if approvedOnly {
		query = `SELECT ` + testimonialColumns + ` FROM testimonials WHERE approved = true ORDER BY created_at DESC`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	defer rows.Close()

	testimonials := make([]model.Testimonial, 0)
	for rows.Next() {
		t, err := scanTestimonial(rows)
		if err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		testimonials = append(testimonials, t)
	}
	return testimonials, rows.Err()
}
