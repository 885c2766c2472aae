package assign_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/service/assignment"
	"dispatch/internal/service/slot"
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
	var assignDTO AssignRequest
	err := json.NewDecoder(r.Body).Decode(&assignDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.Assign(r.Context(), assignDTO.OrderID, assignDTO.MasterID, assignDTO.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrInvalidMasterID),
			errors.Is(err, assignment.ErrInvalidSlotID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, slot.ErrSlotNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, assignment.ErrAlreadyAssigned),
			errors.Is(err, assignment.ErrSlotTaken),
			errors.Is(err, assignment.ErrSlotNotOwned),
			errors.Is(err, assignment.ErrNoCapacity),
			errors.Is(err, assignment.ErrBeyondHorizon):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, tx.ErrSerialization):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := AssignResponse{
		OrderID:  assignmentEntity.OrderID,
		MasterID: assignmentEntity.MasterID,
		Status:   assignmentEntity.Status.String(),
	}
	if assignmentEntity.ScheduledAt != nil {
		scheduledAt := assignmentEntity.ScheduledAt.Format(time.RFC3339)
		response.ScheduledAt = &scheduledAt
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
