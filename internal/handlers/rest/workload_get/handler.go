package workload_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"dispatch/internal/handlers/rest/workloads_get"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/workload"
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
	masterID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if caller, ok := auth.CallerFromContext(r.Context()); ok && !auth.CanActForMaster(caller, masterID) {
		w.WriteHeader(http.StatusForbidden)
		return
	}

	snapshot, err := h.service.Compute(r.Context(), masterID, time.Now().UTC())
	if err != nil {
		switch {
		case errors.Is(err, workload.ErrInvalidMasterID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tx.ErrSerialization):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := workloads_get.ToWorkloadItem(*snapshot)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
