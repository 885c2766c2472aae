//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	// GetActiveByOrderID возвращает ErrNotAssigned, если активного назначения нет.
	GetActiveByOrderID(ctx context.Context, orderID int64) (*entities.Assignment, error)
	Create(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.Assignment, error)
	Update(ctx context.Context, assignmentModify entities.AssignmentModify) (*entities.Assignment, error)
	Release(ctx context.Context, orderID int64) (*entities.Assignment, error)
	UpdateStatusByOrderID(ctx context.Context, orderID int64, status entities.AssignmentStatusType) (*entities.Assignment, error)

	CountActiveScheduledWithin(ctx context.Context, masterID int64, from, to time.Time, excludeOrderID int64) (int64, error)
}

type SlotService interface {
	GetSlot(ctx context.Context, slotID int64) (*entities.Slot, error)
}

type WorkloadService interface {
	Compute(ctx context.Context, masterID int64, now time.Time) (*entities.WorkloadSnapshot, error)
}

type EligibilityService interface {
	Horizon(ctx context.Context, masterID int64, now time.Time) (time.Duration, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
