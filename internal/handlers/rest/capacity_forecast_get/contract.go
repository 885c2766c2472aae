//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=capacity_forecast_get_test
package capacity_forecast_get

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
	WeeklyForecast(ctx context.Context, now time.Time) (*entities.WeeklyForecast, error)
}

type ForecastDay struct {
	Date              string `json:"date"`
	AvailableCapacity int    `json:"available_capacity"`
}

type ForecastResponse struct {
	Days             []ForecastDay `json:"days"`
	TotalSlots       int           `json:"total_slots"`
	AvgDailyCapacity float64       `json:"avg_daily_capacity"`
}
