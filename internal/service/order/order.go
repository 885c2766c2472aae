package order

import (
	"context"
	"errors"
	"fmt"

	"dispatch/internal/entities"
	assignmentservice "dispatch/internal/service/assignment"
)

// Service синхронизирует локальную реплику реестра заказов с событиями
// внешнего сервиса заказов и дёргает координатор назначений при смене
// статуса.
type Service struct {
	repository        Repository
	assignmentService AssignmentService
	txManager         TxManager
}

func New(repository Repository, assignmentService AssignmentService, txManager TxManager) *Service {
	return &Service{
		repository:        repository,
		assignmentService: assignmentService,
		txManager:         txManager,
	}
}

func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isKnownStatus(*orderModify.Status) {
		return nil, ErrUndefinedStatus
	}

	var updated *entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = s.repository.Upsert(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("upsert order ledger: %w", err)
		}

		_, err = s.assignmentService.ProcessOrderStatusChange(ctx, updated.ID, updated.Status)
		if err != nil {
			// заказа без активного назначения в реестре достаточно
			if errors.Is(err, assignmentservice.ErrNotAssigned) {
				return nil
			}
			return fmt.Errorf("process assignment side effects: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) GetOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	if orderID <= 0 {
		return nil, ErrOrderNotFound
	}

	orderEntity, err := s.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}

	return orderEntity, nil
}

func isKnownStatus(status entities.OrderStatusType) bool {
	switch status {
	case entities.OrderNew, entities.OrderProcessing, entities.OrderAssigned,
		entities.OrderInProgress, entities.OrderCompleted, entities.OrderCancelled:
		return true
	default:
		return false
	}
}
