package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/service"
	"retreat-backoffice/pkg/apierror"
)

type ReservationHandler struct {
	service *service.ReservationService
}

func NewReservationHandler(service *service.ReservationService) *ReservationHandler {
	return &ReservationHandler{service: service}
}

// Create is public: visitors book a program from the site.
func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	reservation, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, reservation)
}

func (h *ReservationHandler) List(w http.ResponseWriter, r *http.Request) {
	reservations, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, reservations)
}

func (h *ReservationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.UpdateReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	reservation, err := h.service.UpdateStatus(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, reservation)
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.APIResponse{Success: true})
}
