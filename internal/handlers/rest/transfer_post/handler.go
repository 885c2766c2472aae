package transfer_post

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
	var transferDTO TransferRequest
	err := json.NewDecoder(r.Body).Decode(&transferDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, err := h.service.TransferToWarranty(r.Context(), transferDTO.OrderID, transferDTO.MasterID)
	if err != nil {
		switch {
		case errors.Is(err, assignment.ErrInvalidOrderID),
			errors.Is(err, assignment.ErrInvalidMasterID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, assignment.ErrNotAssigned),
			errors.Is(err, assignment.ErrAlreadyAssigned),
			errors.Is(err, assignment.ErrNoCapacity):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, tx.ErrSerialization):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := TransferResponse{
		OrderID:         assignmentEntity.OrderID,
		MasterID:        assignmentEntity.MasterID,
		Status:          assignmentEntity.Status.String(),
		TransferredFrom: assignmentEntity.TransferredFrom,
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
