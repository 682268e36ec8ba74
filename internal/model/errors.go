package model

import "errors"

var (
	// Authentication errors
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrAccountDisabled        = errors.New("account disabled")
	ErrInvalidToken           = errors.New("invalid token")
	ErrUserNotFoundOrInactive = errors.New("user not found or inactive")

	// Authorization errors
	ErrNoToken          = errors.New("no token provided")
	ErrInsufficientRole = errors.New("insufficient role")

	// User management errors
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrLastAdmin    = errors.New("cannot remove the last active admin")

	// Content errors
	ErrPostNotFound        = errors.New("post not found")
	ErrSlugTaken           = errors.New("slug already in use")
	ErrProgramNotFound     = errors.New("program not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrMessageNotFound     = errors.New("message not found")
	ErrSettingNotFound     = errors.New("setting not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
