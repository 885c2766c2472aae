//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=slot_test
package slot

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, slotModifyEntity entities.SlotModify) (*entities.Slot, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*entities.Slot, error)
	ListByMaster(ctx context.Context, masterID int64, from, to time.Time) ([]entities.Slot, error)

	CountActiveAssignmentsWithin(ctx context.Context, masterID int64, from, to time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
