package slot_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/slot"
	"dispatch/pkg/logger"
	"dispatch/pkg/tx"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
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
	var slotCreateDTO SlotCreateRequest
	err := json.NewDecoder(r.Body).Decode(&slotCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if caller, ok := auth.CallerFromContext(r.Context()); ok && !auth.CanActForMaster(caller, slotCreateDTO.MasterID) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	startsAt, endsAt, err := parseInterval(slotCreateDTO.Date, slotCreateDTO.StartTime, slotCreateDTO.EndTime)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	slotEntity, err := h.service.CreateSlot(r.Context(), slotCreateDTO.MasterID, startsAt, endsAt)
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrInvalidMasterID),
			errors.Is(err, slot.ErrInvalidTimeRange),
			errors.Is(err, slot.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, slot.ErrOverlap):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, tx.ErrSerialization):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := SlotResponse{
		ID:        slotEntity.ID,
		MasterID:  slotEntity.MasterID,
		Date:      slotEntity.StartsAt.Format(dateLayout),
		StartTime: slotEntity.StartsAt.Format(timeLayout),
		EndTime:   slotEntity.EndsAt.Format(timeLayout),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseInterval(date, startTime, endTime string) (time.Time, time.Time, error) {
	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start, err := time.Parse(timeLayout, startTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(timeLayout, endTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	startsAt := time.Date(day.Year(), day.Month(), day.Day(), start.Hour(), start.Minute(), 0, 0, time.UTC)
	endsAt := time.Date(day.Year(), day.Month(), day.Day(), end.Hour(), end.Minute(), 0, 0, time.UTC)
	return startsAt, endsAt, nil
}
