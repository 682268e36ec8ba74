package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/service"
	"retreat-backoffice/pkg/apierror"
)

type SettingHandler struct {
	service *service.SettingService
}

func NewSettingHandler(service *service.SettingService) *SettingHandler {
	return &SettingHandler{service: service}
}

func (h *SettingHandler) List(w http.ResponseWriter, r *http.Request) {
	settings, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, settings)
}

func (h *SettingHandler) Get(w http.ResponseWriter, r *http.Request) {
	setting, err := h.service.Get(r.Context(), chi.URLParam(r, "key"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, setting)
}

func (h *SettingHandler) Set(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.UpdateSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	setting, err := h.service.Set(r.Context(), chi.URLParam(r, "key"), payload.Value)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, setting)
}
