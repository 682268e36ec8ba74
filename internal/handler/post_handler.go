package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"retreat-backoffice/internal/middleware"
	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/service"
	"retreat-backoffice/pkg/apierror"
)

type PostHandler struct {
	service *service.PostService
}

func NewPostHandler(service *service.PostService) *PostHandler {
	return &PostHandler{service: service}
}

func (h *PostHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListPublished(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, posts)
}

func (h *PostHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	post, err := h.service.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, post)
}

func (h *PostHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	posts, err := h.service.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, posts)
}

func (h *PostHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeError(w, model.ErrNoToken)
		return
	}

	var payload model.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	post, err := h.service.Create(r.Context(), payload, user.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, post)
}

func (h *PostHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.PostRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	post, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, post)
}

func (h *PostHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.APIResponse{Success: true})
}
