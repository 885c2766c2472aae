package tier_settings_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"dispatch/internal/entities"
	"dispatch/internal/service/eligibility"
	"dispatch/pkg/logger"
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
	var settingsDTO TierSettingsUpdate
	err := json.NewDecoder(r.Body).Decode(&settingsDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, err := h.service.UpdateSettings(r.Context(), entities.TierSettings{
		AverageCheckThreshold:  settingsDTO.AverageCheckThreshold,
		DailyOrderSumThreshold: settingsDTO.DailyOrderSumThreshold,
		NetTurnoverThreshold:   settingsDTO.NetTurnoverThreshold,
		ExtraHoursTier1:        settingsDTO.ExtraHoursTier1,
		ExtraHoursTier2:        settingsDTO.ExtraHoursTier2,
	})
	if err != nil {
		switch {
		case errors.Is(err, eligibility.ErrInvalidThreshold):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := TierSettingsUpdate{
		AverageCheckThreshold:  updated.AverageCheckThreshold,
		DailyOrderSumThreshold: updated.DailyOrderSumThreshold,
		NetTurnoverThreshold:   updated.NetTurnoverThreshold,
		ExtraHoursTier1:        updated.ExtraHoursTier1,
		ExtraHoursTier2:        updated.ExtraHoursTier2,
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
