package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"retreat-backoffice/internal/model"
	"retreat-backoffice/internal/service"
	"retreat-backoffice/pkg/apierror"
)

type MessageHandler struct {
	service *service.MessageService
}

func NewMessageHandler(service *service.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Create is the public contact-form endpoint.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var payload model.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, apierror.New("BAD_REQUEST", "invalid JSON body", "", http.StatusBadRequest))
		return
	}

	message, err := h.service.Create(r.Context(), payload)
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusCreated, message)
}

func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	messages, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeData(w, http.StatusOK, messages)
}

func (h *MessageHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if err := h.service.MarkRead(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.APIResponse{Success: true})
}

func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, model.APIResponse{Success: true})
}
