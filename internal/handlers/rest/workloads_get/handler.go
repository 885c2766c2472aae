package workloads_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/entities"
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
	snapshots, err := h.service.ComputeAll(r.Context(), time.Now().UTC())
	if err != nil {
		if errors.Is(err, tx.ErrSerialization) {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := WorkloadsResponse{
		Masters: make([]WorkloadItem, 0, len(snapshots)),
	}
	for _, snapshot := range snapshots {
		response.Masters = append(response.Masters, ToWorkloadItem(snapshot))
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

func ToWorkloadItem(snapshot entities.WorkloadSnapshot) WorkloadItem {
	item := WorkloadItem{
		MasterID:        snapshot.MasterID,
		TotalSlots:      snapshot.TotalSlots,
		OccupiedSlots:   snapshot.OccupiedSlots,
		FreeSlots:       snapshot.FreeSlots,
		WorkloadPercent: snapshot.WorkloadPercent,
		OrdersByDate:    snapshot.OrdersByDate,
	}
	if snapshot.NextFreeSlot != nil {
		item.NextFreeSlot = &NextFreeSlot{
			ID:        snapshot.NextFreeSlot.ID,
			Date:      snapshot.NextFreeSlot.StartsAt.Format("2006-01-02"),
			StartTime: snapshot.NextFreeSlot.StartsAt.Format("15:04"),
			EndTime:   snapshot.NextFreeSlot.EndsAt.Format("15:04"),
		}
	}
	return item
}
