package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/service"
	"retreat-backoffice/pkg/apierror"
)

type TestimonialHandler struct {
	service *service.TestimonialService
}

func NewTestimonialHandler(service *service.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{service: service}
}

func (h *TestimonialHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.ListApproved(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, testimonials)
}

func (h *TestimonialHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	testimonials, err := h.service.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, testimonials)
}

func (h *TestimonialHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.TestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	testimonial, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, testimonial)
}

func (h *TestimonialHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.TestimonialRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	testimonial, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, testimonial)
}

func (h *TestimonialHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.APIResponse{Success: true})
}
