package eligibility_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"dispatch/internal/pkg/middlewares/auth"
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
	masterID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if caller, ok := auth.CallerFromContext(r.Context()); ok && !auth.CanActForMaster(caller, masterID) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	evaluated, err := h.service.Evaluate(r.Context(), masterID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, eligibility.ErrInvalidMasterID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := EligibilityResponse{
		MasterID:     evaluated.MasterID,
		Mode:         evaluated.Mode.String(),
		Level:        int(evaluated.Level),
		HorizonHours: evaluated.HorizonHours,
		AverageCheck: Rule{
			Value:     evaluated.Stats.AverageCheck,
			Threshold: evaluated.Settings.AverageCheckThreshold,
			Passed:    evaluated.AverageCheckPassed,
		},
		DailyRevenue: Rule{
			Value:     evaluated.Stats.DailyRevenue,
			Threshold: evaluated.Settings.DailyOrderSumThreshold,
			Passed:    evaluated.DailyRevenuePassed,
		},
		NetTurnover: Rule{
			Value:     evaluated.Stats.NetTurnover10d,
			Threshold: evaluated.Settings.NetTurnoverThreshold,
			Passed:    evaluated.NetTurnoverPassed,
		},
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
