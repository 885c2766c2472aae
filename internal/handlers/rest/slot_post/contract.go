//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=slot_post_test
package slot_post

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
	CreateSlot(ctx context.Context, masterID int64, startsAt, endsAt time.Time) (*entities.Slot, error)
}

type SlotCreateRequest struct {
	MasterID  int64  `json:"master_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type SlotResponse struct {
	ID        int64  `json:"id"`
	MasterID  int64  `json:"master_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}
