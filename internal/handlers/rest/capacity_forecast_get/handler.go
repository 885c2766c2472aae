package capacity_forecast_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

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
	forecast, err := h.service.WeeklyForecast(r.Context(), time.Now().UTC())
	if err != nil {
		if errors.Is(err, tx.ErrSerialization) {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := ForecastResponse{
		Days:             make([]ForecastDay, 0, len(forecast.Days)),
		TotalSlots:       forecast.TotalSlots,
		AvgDailyCapacity: forecast.AvgDailyCapacity,
	}
	for _, day := range forecast.Days {
		response.Days = append(response.Days, ForecastDay{
			Date:              day.Date.Format("2006-01-02"),
			AvailableCapacity: day.AvailableCapacity,
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
