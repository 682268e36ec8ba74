package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"retreat-backoffice/internal/model"
	"retreat-backoffice/pkg/apierror"
)

func writeJSON(w http.ResponseWriter, status int, resp model.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeData(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, model.APIResponse{Success: true, Data: data})
}

func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_ERROR"
	message := "Unexpected server error"

	var apiErr *apierror.APIError
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.HTTPStatus
		code = apiErr.Code
		message = apiErr.Message
	case errors.Is(err, model.ErrInvalidCredentials), errors.Is(err, model.ErrAccountDisabled):
		// Deliberately identical wire response for unknown email, wrong
		// password, and disabled account, to resist enumeration.
		status = http.StatusUnauthorized
		code = "INVALID_CREDENTIALS"
		message = "Invalid email or password"
	case errors.Is(err, model.ErrInvalidToken):
		status = http.StatusUnauthorized
		code = "INVALID_TOKEN"
		message = "Invalid or expired token"
	case errors.Is(err, model.ErrUserNotFoundOrInactive):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"
		message = "User not found or inactive"
	case errors.Is(err, model.ErrNoToken):
		status = http.StatusUnauthorized
		code = "NO_TOKEN"
		message = "Authentication required"
	case errors.Is(err, model.ErrInsufficientRole):
		status = http.StatusForbidden
		code = "FORBIDDEN"
		message = "Insufficient permissions"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
		message = "User not found"
	case errors.Is(err, model.ErrPostNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
		message = "Post not found"
	case errors.Is(err, model.ErrProgramNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
		message = "Program not found"
	case errors.Is(err, model.ErrTestimonialNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
		message = "Testimonial not found"
	case errors.Is(err, model.ErrReservationNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
		message = "Reservation not found"
	case errors.Is(err, model.ErrMessageNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
		message = "Message not found"
	case errors.Is(err, model.ErrSettingNotFound):
		status = http.StatusNotFound
		code = "NOT_FOUND"
		message = "Setting not found"
	case errors.Is(err, model.ErrEmailTaken):
		status = http.StatusConflict
		code = "ALREADY_EXISTS"
		message = "Email already registered"
	case errors.Is(err, model.ErrSlugTaken):
		status = http.StatusConflict
		code = "ALREADY_EXISTS"
		message = "Slug already in use"
	case errors.Is(err, model.ErrLastAdmin):
		status = http.StatusConflict
		code = "CONFLICT"
		message = "Cannot remove the last active admin"
	case errors.Is(err, model.ErrInvalidInput):
		status = http.StatusBadRequest
		code = "BAD_REQUEST"
		message = "Invalid input"
	default:
		// Internal details stay server-side.
		slog.Error("unhandled error in writeError", "error", err.Error())
	}

	writeJSON(w, status, model.APIResponse{
		Success: false,
		Message: message,
		Error:   code,
	})
}
