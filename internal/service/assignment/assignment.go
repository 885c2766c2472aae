package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Assignment struct {
	repository  Repository
	slotService SlotService
	workload    WorkloadService
	eligibility EligibilityService
	txManager   TxManager
}

func New(
	repository Repository,
	slotService SlotService,
	workload WorkloadService,
	eligibility EligibilityService,
	txManager TxManager,
) *Assignment {
	return &Assignment{
		repository:  repository,
		slotService: slotService,
		workload:    workload,
		eligibility: eligibility,
		txManager:   txManager,
	}
}

// Assign назначает заказ мастеру. С явным слотом заказ планируется на
// начало слота; без слота проверяется только наличие свободных слотов,
// время проставит поздний проход планирования. Проверки и запись идут
// одной serializable-транзакцией, частичных коммитов нет.
func (a *Assignment) Assign(ctx context.Context, orderID, masterID int64, slotID *int64) (*entities.Assignment, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if masterID <= 0 {
		return nil, ErrInvalidMasterID
	}
	if slotID != nil && *slotID <= 0 {
		return nil, ErrInvalidSlotID
	}

	now := time.Now().UTC()

	var result *entities.Assignment
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := a.repository.GetActiveByOrderID(ctx, orderID)
		if err != nil && !errors.Is(err, ErrNotAssigned) {
			return fmt.Errorf("get active assignment: %w", err)
		}

		if existing != nil && existing.MasterID != masterID {
			return ErrAlreadyAssigned
		}
		if existing != nil && (slotID == nil || existing.ScheduledAt != nil) {
			// повторное назначение тому же мастеру допустимо только как
			// дозаполнение времени у ещё не запланированного заказа
			return ErrAlreadyAssigned
		}

		var scheduledAt *time.Time
		if slotID != nil {
			scheduledAt, err = a.resolveSlot(ctx, *slotID, orderID, masterID, now)
			if err != nil {
				return err
			}
		} else {
			snapshot, err := a.workload.Compute(ctx, masterID, now)
			if err != nil {
				return fmt.Errorf("compute workload: %w", err)
			}
			if snapshot.FreeSlots <= 0 {
				return ErrNoCapacity
			}
		}

		status := entities.AssignmentAssigned
		if existing != nil {
			result, err = a.repository.Update(ctx, entities.AssignmentModify{
				ID:          &existing.ID,
				Status:      &status,
				ScheduledAt: scheduledAt,
			})
		} else {
			result, err = a.repository.Create(ctx, entities.AssignmentModify{
				OrderID:     &orderID,
				MasterID:    &masterID,
				Status:      &status,
				ScheduledAt: scheduledAt,
			})
		}
		if err != nil {
			return fmt.Errorf("commit assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Unassign снимает мастера: назначение переводится в unassigned, заказ
// возвращается в пул назначаемых. Сама запись не удаляется.
func (a *Assignment) Unassign(ctx context.Context, orderID int64) (*entities.Assignment, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	var released *entities.Assignment
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		released, err = a.repository.Release(ctx, orderID)
		if err != nil {
			return fmt.Errorf("release assignment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return released, nil
}

// TransferToWarranty передаёт заказ гарантийному мастеру: те же проверки
// доступности, статус transferred, прежний мастер сохраняется для аудита.
// Время визита сбрасывается: оно указывало на слот прежнего мастера, у
// гарантийного его слот подберёт поздний проход планирования.
func (a *Assignment) TransferToWarranty(ctx context.Context, orderID, warrantyMasterID int64) (*entities.Assignment, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}
	if warrantyMasterID <= 0 {
		return nil, ErrInvalidMasterID
	}

	now := time.Now().UTC()

	var result *entities.Assignment
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		existing, err := a.repository.GetActiveByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get active assignment: %w", err)
		}
		if existing.MasterID == warrantyMasterID {
			return ErrAlreadyAssigned
		}

		snapshot, err := a.workload.Compute(ctx, warrantyMasterID, now)
		if err != nil {
			return fmt.Errorf("compute warranty master workload: %w", err)
		}
		if snapshot.FreeSlots <= 0 {
			return ErrNoCapacity
		}

		status := entities.AssignmentTransferred
		result, err = a.repository.Update(ctx, entities.AssignmentModify{
			ID:              &existing.ID,
			MasterID:        &warrantyMasterID,
			Status:          &status,
			TransferredFrom: &existing.MasterID,
			ClearSchedule:   true,
		})
		if err != nil {
			return fmt.Errorf("commit transfer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// ProcessOrderStatusChange реакция на событие внешнего сервиса заказов:
// терминальный статус освобождает мастера и его слот.
func (a *Assignment) ProcessOrderStatusChange(ctx context.Context, orderID int64, status entities.OrderStatusType) (*entities.Assignment, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	switch status {
	case entities.OrderCompleted:
		return a.markStatus(ctx, orderID, entities.AssignmentCompleted)
	case entities.OrderCancelled:
		return a.Unassign(ctx, orderID)
	case entities.OrderInProgress:
		return a.markStatus(ctx, orderID, entities.AssignmentInProgress)
	case entities.OrderNew, entities.OrderProcessing, entities.OrderAssigned:
		return a.repository.GetActiveByOrderID(ctx, orderID)
	default:
		return nil, ErrUndefinedStatus
	}
}

func (a *Assignment) markStatus(ctx context.Context, orderID int64, status entities.AssignmentStatusType) (*entities.Assignment, error) {
	var updated *entities.Assignment
	err := a.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		updated, err = a.repository.UpdateStatusByOrderID(ctx, orderID, status)
		if err != nil {
			return fmt.Errorf("update assignment status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// resolveSlot валидирует явный слот: принадлежность мастеру, горизонт
// видимости и занятость другим заказом.
func (a *Assignment) resolveSlot(ctx context.Context, slotID, orderID, masterID int64, now time.Time) (*time.Time, error) {
	slot, err := a.slotService.GetSlot(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}
	if slot.MasterID != masterID {
		return nil, ErrSlotNotOwned
	}

	horizon, err := a.eligibility.Horizon(ctx, masterID, now)
	if err != nil {
		return nil, fmt.Errorf("get visibility horizon: %w", err)
	}
	if slot.StartsAt.After(now.Add(horizon)) {
		return nil, ErrBeyondHorizon
	}

	occupied, err := a.repository.CountActiveScheduledWithin(ctx, masterID, slot.StartsAt, slot.EndsAt, orderID)
	if err != nil {
		return nil, fmt.Errorf("check slot occupancy: %w", err)
	}
	if occupied > 0 {
		return nil, ErrSlotTaken
	}

	scheduledAt := slot.StartsAt
	return &scheduledAt, nil
}
