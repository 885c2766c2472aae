//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assign_post_test
package assign_post

import (
	"context"

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
	Assign(ctx context.Context, orderID, masterID int64, slotID *int64) (*entities.Assignment, error)
}

type AssignRequest struct {
	OrderID  int64  `json:"order_id"`
	MasterID int64  `json:"master_id"`
	SlotID   *int64 `json:"slot_id,omitempty"`
}

type AssignResponse struct {
	OrderID     int64   `json:"order_id"`
	MasterID    int64   `json:"master_id"`
	Status      string  `json:"status"`
	ScheduledAt *string `json:"scheduled_at"`
}
