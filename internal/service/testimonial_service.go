package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/repository"
)

type TestimonialService struct {
	testimonials *repository.TestimonialRepository
}

func NewTestimonialService(testimonials *repository.TestimonialRepository) *TestimonialService {
	return &TestimonialService{testimonials: testimonials}
}

func (s *TestimonialService) ListApproved(ctx context.Context) ([]model.Testimonial, error) {
	return s.testimonials.List(ctx, true)
}

func (s *TestimonialService) ListAll(ctx context.Context) ([]model.Testimonial, error) {
	return s.testimonials.List(ctx, false)
}

func (s *TestimonialService) Create(ctx context.Context, req model.TestimonialRequest) (model.Testimonial, error) {
	author := strings.TrimSpace(req.Author)
	quote := strings.TrimSpace(req.Quote)
	if author == "" || quote == "" || req.Rating < 1 || req.Rating > 5 {
		return model.Testimonial{}, model.ErrInvalidInput
	}

	now := time.Now().UTC()
	testimonial := model.Testimonial{
		ID:        uuid.NewString(),
		Author:    author,
		Quote:     quote,
		Rating:    req.Rating,
		Approved:  req.Approved,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.testimonials.Create(ctx, testimonial); err != nil {
		return model.Testimonial{}, err
	}
	return testimonial, nil
}

func (s *TestimonialService) Update(ctx context.Context, id string, req model.TestimonialRequest) (model.Testimonial, error) {
	testimonial, err := s.testimonials.FindByID(ctx, id)
	if err != nil {
		return model.Testimonial{}, err
	}

	author := strings.TrimSpace(req.Author)
	quote := strings.TrimSpace(req.Quote)
	if author == "" || quote == "" || req.Rating < 1 || req.Rating > 5 {
		return model.Testimonial{}, model.ErrInvalidInput
	}

	testimonial.Author = author
	testimonial.Quote = quote
	testimonial.Rating = req.Rating
	testimonial.Approved = req.Approved
	testimonial.UpdatedAt = time.Now().UTC()

	if err := s.testimonials.Update(ctx, testimonial); err != nil {
		return model.Testimonial{}, err
	}
	return testimonial, nil
}

func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	return s.testimonials.Delete(ctx, id)
}
