package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/service"
	"retreat-backoffice/pkg/apierror"
)

type ProgramHandler struct {
	service *service.ProgramService
}

func NewProgramHandler(service *service.ProgramService) *ProgramHandler {
	return &ProgramHandler{service: service}
}

func (h *ProgramHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	programs, err := h.service.ListActive(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, programs)
}

func (h *ProgramHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	programs, err := h.service.ListAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, programs)
}

func (h *ProgramHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.ProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	program, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, program)
}

func (h *ProgramHandler) Update(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.ProgramRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	program, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, program)
}

func (h *ProgramHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.APIResponse{Success: true})
}
