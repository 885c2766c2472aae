//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transfer_post_test
package transfer_post

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
	TransferToWarranty(ctx context.Context, orderID, warrantyMasterID int64) (*entities.Assignment, error)
}

type TransferRequest struct {
	OrderID  int64 `json:"order_id"`
	MasterID int64 `json:"master_id"`
}

type TransferResponse struct {
	OrderID         int64  `json:"order_id"`
	MasterID        int64  `json:"master_id"`
	Status          string `json:"status"`
	TransferredFrom *int64 `json:"transferred_from"`
}
