//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=capacity_test
package capacity

import (
	"context"
	"time"

	"dispatch/internal/entities"
)

type Repository interface {
	DayCapacity(ctx context.Context, day time.Time) (*DayCapacity, error)
	PendingOrders(ctx context.Context) (*entities.PendingOrders, error)
}

// DayCapacity сырые агрегаты по одному дню до расчёта процентов.
type DayCapacity struct {
	TotalSlots              int
	OccupiedSlots           int
	TotalMasters            int
	MastersWithAvailability int
	FreeMasters             int
}

type TxManager interface {
	DoRepeatableRead(ctx context.Context, fn func(ctx context.Context) error) error
}
