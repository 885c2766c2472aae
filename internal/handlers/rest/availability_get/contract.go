//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=availability_get_test
package availability_get

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
	ListSlots(ctx context.Context, masterID int64, from, to time.Time) ([]entities.Slot, error)
}

type SlotItem struct {
	ID        int64  `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityResponse struct {
	MasterID int64      `json:"master_id"`
	Slots    []SlotItem `json:"slots"`
}
