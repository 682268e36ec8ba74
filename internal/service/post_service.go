package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/repository"
	"retreat-backoffice/internal/util"
)

type PostService struct {
	posts *repository.PostRepository
}

func NewPostService(posts *repository.PostRepository) *PostService {
	return &PostService{posts: posts}
}

func (s *PostService) ListPublished(ctx context.Context) ([]model.Post, error) {
	return s.posts.List(ctx, true)
}

func (s *PostService) ListAll(ctx context.Context) ([]model.Post, error) {
	return s.posts.List(ctx, false)
}

// GetPublishedBySlug serves the public blog page; drafts look like
// missing posts to the outside.
func (s *PostService) GetPublishedBySlug(ctx context.Context, slug string) (model.Post, error) {
	post, err := s.posts.FindBySlug(ctx, slug)
	if err != nil {
		return model.Post{}, err
	}
	if !post.Published {
		return model.Post{}, model.ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) Get(ctx context.Context, id string) (model.Post, error) {
	return s.posts.FindByID(ctx, id)
}

func (s *PostService) Create(ctx context.Context, req model.PostRequest, authorID string) (model.Post, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.Post{}, model.ErrInvalidInput
	}

	slug, err := s.uniqueSlug(ctx, title)
	if err != nil {
		return model.Post{}, err
	}

	now := time.Now().UTC()
	post := model.Post{
		ID:        uuid.NewString(),
		Title:     title,
		Slug:      slug,
		Excerpt:   strings.TrimSpace(req.Excerpt),
		Content:   req.Content,
		Published: req.Published,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.posts.Create(ctx, post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

func (s *PostService) Update(ctx context.Context, id string, req model.PostRequest) (model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return model.Post{}, err
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return model.Post{}, model.ErrInvalidInput
	}

	// Regenerate the slug only when the title changed; published URLs
	// stay stable otherwise.
	if title != post.Title {
		slug, err := s.uniqueSlug(ctx, title)
		if err != nil {
			return model.Post{}, err
		}
		post.Slug = slug
	}

	post.Title = title
	post.Excerpt = strings.TrimSpace(req.Excerpt)
	post.Content = req.Content
	post.Published = req.Published
	post.UpdatedAt = time.Now().UTC()

	if err := s.posts.Update(ctx, post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	return s.posts.Delete(ctx, id)
}

func (s *PostService) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := util.Slugify(title)
	if base == "" {
		return "", model.ErrInvalidInput
	}

	slug := base
	for i := 2; ; i++ {
		taken, err := s.posts.ExistsBySlug(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
		if i > 50 {
			return "", fmt.Errorf("%w: could not derive a unique slug for %q", model.ErrSlugTaken, title)
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}
