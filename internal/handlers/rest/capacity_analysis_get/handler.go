package capacity_analysis_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/capacity"
	"dispatch/pkg/logger"
	"dispatch/pkg/tx"
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
	// явный ?day= даёт срез по одному дню, без параметра — сегодня+завтра
	if dayParam := r.URL.Query().Get("day"); dayParam != "" {
		h.serveDay(w, r, dayParam)
		return
	}

	overview, err := h.service.Overview(r.Context(), time.Now().UTC())
	if err != nil {
		if errors.Is(err, tx.ErrSerialization) {
			w.WriteHeader(http.StatusServiceUnavailable)
		} else {
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := AnalysisResponse{
		Today:    toDayReport(overview.Today),
		Tomorrow: toDayReport(overview.Tomorrow),
		PendingOrders: PendingOrders{
			NewOrders:        overview.Pending.NewOrders,
			ProcessingOrders: overview.Pending.ProcessingOrders,
			TotalPending:     overview.Pending.TotalPending,
		},
		Recommendations: make([]RecommendationItem, 0, len(overview.Recommendations)),
	}
	for _, recommendation := range overview.Recommendations {
		response.Recommendations = append(response.Recommendations, RecommendationItem{
			Type:    recommendation.Type.String(),
			Title:   recommendation.Title,
			Message: recommendation.Message,
			Action:  recommendation.Action,
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

func (h *Handler) serveDay(w http.ResponseWriter, r *http.Request, dayParam string) {
	day, err := time.Parse(dateLayout, dayParam)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	report, err := h.service.Analyze(r.Context(), day)
	if err != nil {
		switch {
		case errors.Is(err, capacity.ErrInvalidDay):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, tx.ErrSerialization):
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := DayAnalysisResponse{
		Day: toDayReport(*report),
		PendingOrders: PendingOrders{
			NewOrders:        report.Pending.NewOrders,
			ProcessingOrders: report.Pending.ProcessingOrders,
			TotalPending:     report.Pending.TotalPending,
		},
		Recommendations: make([]RecommendationItem, 0, len(report.Recommendations)),
	}
	for _, recommendation := range report.Recommendations {
		response.Recommendations = append(response.Recommendations, RecommendationItem{
			Type:    recommendation.Type.String(),
			Title:   recommendation.Title,
			Message: recommendation.Message,
			Action:  recommendation.Action,
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

func toDayReport(report entities.CapacityReport) DayReport {
	return DayReport{
		Date: report.Day.Format(dateLayout),
		MastersStats: MastersStats{
			TotalMasters:            report.MastersStats.TotalMasters,
			MastersWithAvailability: report.MastersStats.MastersWithAvailability,
			FreeMasters:             report.MastersStats.FreeMasters,
		},
		Capacity: CapacityStats{
			TotalSlots:         report.Capacity.TotalSlots,
			AvailableSlots:     report.Capacity.AvailableSlots,
			OccupiedSlots:      report.Capacity.OccupiedSlots,
			UtilizationPercent: report.Capacity.UtilizationPercent,
		},
	}
}
