package availability_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/slot"
	"dispatch/pkg/logger"
)

const dateLayout = "2006-01-02"

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
	masterID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if caller, ok := auth.CallerFromContext(r.Context()); ok && !auth.CanActForMaster(caller, masterID) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	from, to, err := parseDateRange(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	slots, err := h.service.ListSlots(r.Context(), masterID, from, to)
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrInvalidMasterID),
			errors.Is(err, slot.ErrInvalidDateRange):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := AvailabilityResponse{
		MasterID: masterID,
		Slots:    make([]SlotItem, 0, len(slots)),
	}
	for _, slotEntity := range slots {
		response.Slots = append(response.Slots, SlotItem{
			ID:        slotEntity.ID,
			Date:      slotEntity.StartsAt.Format(dateLayout),
			StartTime: slotEntity.StartsAt.Format("15:04"),
			EndTime:   slotEntity.EndsAt.Format("15:04"),
		})
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

// parseDateRange границы включительные по дням, отсутствующая граница
// оставляет край открытым.
func parseDateRange(fromStr, toStr string) (time.Time, time.Time, error) {
	var from, to time.Time

	if fromStr != "" {
		parsed, err := time.Parse(dateLayout, fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		from = parsed
	}
	if toStr != "" {
		parsed, err := time.Parse(dateLayout, toStr)
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		to = parsed.AddDate(0, 0, 1)
	}

	return from, to, nil
}
