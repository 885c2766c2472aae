package tier_settings_get

import (
	"encoding/json"
	"net/http"

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
	settings, err := h.service.GetSettings(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := TierSettingsResponse{
		AverageCheckThreshold:  settings.AverageCheckThreshold,
		DailyOrderSumThreshold: settings.DailyOrderSumThreshold,
		NetTurnoverThreshold:   settings.NetTurnoverThreshold,
		ExtraHoursTier1:        settings.ExtraHoursTier1,
		ExtraHoursTier2:        settings.ExtraHoursTier2,
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
