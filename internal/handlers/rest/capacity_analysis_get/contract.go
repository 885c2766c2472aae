//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=capacity_analysis_get_test
package capacity_analysis_get

import (
	"context"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Overview(ctx context.Context, now time.Time) (*entities.CapacityOverview, error)
	Analyze(ctx context.Context, day time.Time) (*entities.CapacityReport, error)
}

type MastersStats struct {
	TotalMasters            int `json:"total_masters"`
	MastersWithAvailability int `json:"masters_with_availability"`
	FreeMasters             int `json:"free_masters"`
}

type CapacityStats struct {
	TotalSlots         int `json:"total_slots"`
	AvailableSlots     int `json:"available_slots"`
	OccupiedSlots      int `json:"occupied_slots"`
	UtilizationPercent int `json:"utilization_percent"`
}

type PendingOrders struct {
	NewOrders        int `json:"new_orders"`
	ProcessingOrders int `json:"processing_orders"`
	TotalPending     int `json:"total_pending"`
}

type DayReport struct {
	Date         string        `json:"date"`
	MastersStats MastersStats  `json:"masters_stats"`
	Capacity     CapacityStats `json:"capacity"`
}

type RecommendationItem struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Action  string `json:"action"`
}

type AnalysisResponse struct {
	Today           DayReport            `json:"today"`
	Tomorrow        DayReport            `json:"tomorrow"`
	PendingOrders   PendingOrders        `json:"pending_orders"`
	Recommendations []RecommendationItem `json:"recommendations"`
}

type DayAnalysisResponse struct {
	Day             DayReport            `json:"day"`
	PendingOrders   PendingOrders        `json:"pending_orders"`
	Recommendations []RecommendationItem `json:"recommendations"`
}
