package unassign_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/service/assignment"
	"dispatch/pkg/logger"
	"dispatch/pkg/tx"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var unassignDTO UnassignRequest
	err := json.NewDecoder(r.Body).Decode(&unassignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.Unassign(r.Context(), unassignDTO.OrderID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrNotAssigned):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, tx.ErrSerialization):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := UnassignResponse{
		OrderID: assignmentEntity.OrderID,
		Status:  assignmentEntity.Status.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
