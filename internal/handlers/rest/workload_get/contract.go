//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=workload_get_test
package workload_get

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
	Compute(ctx context.Context, masterID int64, now time.Time) (*entities.WorkloadSnapshot, error)
}
