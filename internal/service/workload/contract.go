//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=workload_test
package workload

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	ListMasterIDs(ctx context.Context) ([]int64, error)
	ListSlots(ctx context.Context, masterID int64, from, to time.Time) ([]entities.Slot, error)
	ListActiveAssignments(ctx context.Context, masterID int64, from, to time.Time) ([]entities.Assignment, error)
}

type EligibilityService interface {
	Horizon(ctx context.Context, masterID int64, now time.Time) (time.Duration, error)
}

type TxManager interface {
	DoRepeatableRead(ctx context.Context, fn func(ctx context.Context) error) error
}
