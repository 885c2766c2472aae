//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"dispatch/internal/entities"
)

type Repository interface {
	Upsert(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	GetByID(ctx context.Context, orderID int64) (*entities.Order, error)
}

type AssignmentService interface {
	ProcessOrderStatusChange(ctx context.Context, orderID int64, status entities.OrderStatusType) (*entities.Assignment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
