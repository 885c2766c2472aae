package slot_delete

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/service/slot"
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
	slotID, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// мастер может удалить только свой слот
	if caller, ok := auth.CallerFromContext(r.Context()); ok && caller.Role == auth.RoleMaster {
		slotEntity, err := h.service.GetSlot(r.Context(), slotID)
		if err != nil {
			if errors.Is(err, slot.ErrSlotNotFound) {
				w.WriteHeader(http.StatusNotFound)
			} else {
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}
		if !auth.CanActForMaster(caller, slotEntity.MasterID) {
			w.WriteHeader(http.StatusForbidden)
			return
		}
	}

	err = h.service.DeleteSlot(r.Context(), slotID)
	if err != nil {
		switch {
		case errors.Is(err, slot.ErrInvalidSlotID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, slot.ErrSlotNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, slot.ErrSlotHasOrder):
			w.WriteHeader(http.StatusConflict)
		case errors.Is(err, tx.ErrSerialization):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
