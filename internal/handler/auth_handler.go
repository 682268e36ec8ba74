package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"retreat-backoffice/internal/middleware"
	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/service"
	"retreat-backoffice/pkg/apierror"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	if strings.TrimSpace(payload.Email) == "" || payload.Password == "" {
		writeError(w, apierror.New("BAD_REQUEST", "email and password are required", "", http.StatusBadRequest))
		return
	}

	result, err := h.service.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.APIResponse{
		Success: true,
		Token:   result.Token,
		User:    result.User,
	})
}

// Verify re-validates a token against the database and returns the user's
// current projection. Clients use it to restore admin sessions.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	token := strings.TrimSpace(payload.Token)
	if token == "" {
		writeError(w, model.ErrNoToken)
		return
	}

	user, err := h.service.Verify(r.Context(), token)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, model.APIResponse{Success: true, User: user})
}

// Logout is a stateless no-op: tokens die at expiry or deactivation, and
// the client simply discards its copy.
func (h *AuthHandler) Logout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, model.APIResponse{Success: true})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrNoToken)
		return
	}

	writeJSON(w, http.StatusOK, model.APIResponse{Success: true, User: user})
}
