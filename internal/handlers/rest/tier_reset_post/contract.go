//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tier_reset_post_test
package tier_reset_post

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
	ResetAutomatic(ctx context.Context, masterID int64, now time.Time) (*entities.TierState, error)
}

type TierStateResponse struct {
	MasterID int64  `json:"master_id"`
	Mode     string `json:"mode"`
	Level    int    `json:"level"`
}
