//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=slot_delete_test
package slot_delete

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
	GetSlot(ctx context.Context, slotID int64) (*entities.Slot, error)
	DeleteSlot(ctx context.Context, slotID int64) error
}
