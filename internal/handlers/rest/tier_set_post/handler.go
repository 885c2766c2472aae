package tier_set_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
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
	masterID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var tierSetDTO TierSetRequest
	err = json.NewDecoder(r.Body).Decode(&tierSetDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	state, err := h.service.SetManual(r.Context(), masterID, entities.TierLevel(tierSetDTO.Level))
	if err != nil {
		switch {
		case errors.Is(err, eligibility.ErrInvalidMasterID),
			errors.Is(err, eligibility.ErrInvalidTierLevel):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := TierStateResponse{
		MasterID: state.MasterID,
		Mode:     state.Mode.String(),
		Level:    int(state.Level),
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
