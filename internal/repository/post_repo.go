package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"retreat-backoffice/internal/model"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

const postColumns = `id, title, slug, excerpt, content, published, author_id, created_at, updated_at`

func scanPost(row pgx.Row) (model.Post, error) {
	var p model.Post
	err := row.Scan(&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Published,
		&p.AuthorID, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (model.Post, error) {
	p, err := scanPost(r.pool.QueryRow(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = $1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Post{}, model.ErrPostNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("find post by id: %w", err)
	}
	return p, nil
}

func (r *PostRepository) FindBySlug(ctx context.Context, slug string) (model.Post, error) {
	p, err := scanPost(r.pool.QueryRow(ctx,
		`SELECT `+postColumns+` FROM posts WHERE slug = $1`, slug))
	if errors.Is(err, pgx.ErrNoRows) {
		return model.Post{}, model.ErrPostNotFound
	}
	if err != nil {
		return model.Post{}, fmt.Errorf("find post by slug: %w", err)
	}
	return p, nil
}

func (r *PostRepository) ExistsBySlug(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM posts WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check slug exists: %w", err)
	}
	return exists, nil
}

func (r *PostRepository) Create(ctx context.Context, p model.Post) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO posts (id, title, slug, excerpt, content, published, author_id, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.Published, p.AuthorID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}
	return nil
}

func (r *PostRepository) Update(ctx context.Context, p model.Post) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE posts SET title = $2, slug = $3, excerpt = $4, content = $5, published = $6, updated_at = $7
		 WHERE id = $1`,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.Published, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrPostNotFound
	}
	return nil
}

// List returns posts newest first; publishedOnly hides drafts for the
// public site.
func (r *PostRepository) List(ctx context.Context, publishedOnly bool) ([]model.Post, error) {
	query := `SELECT ` + postColumns + ` FROM posts ORDER BY created_at DESC`
	if publishedOnly {
		query = `SELECT ` + postColumns + ` FROM posts WHERE published = true ORDER BY created_at DESC`
	}

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	posts := make([]model.Post, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}
