package slot

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

type Slot struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Slot {
	return &Slot{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateSlot объявляет окно доступности мастера. Пересечение с уже
// существующим слотом того же мастера отклоняется, соприкасающиеся
// границы пересечением не считаются.
func (s *Slot) CreateSlot(ctx context.Context, masterID int64, startsAt, endsAt time.Time) (*entities.Slot, error) {
	if !isValidMasterID(masterID) {
		return nil, ErrInvalidMasterID
	}
	if !isValidInterval(startsAt, endsAt) {
		return nil, ErrInvalidTimeRange
	}

	startsAtUTC := startsAt.UTC()
	endsAtUTC := endsAt.UTC()

	slotModify := entities.SlotModify{
		MasterID: &masterID,
		StartsAt: &startsAtUTC,
		EndsAt:   &endsAtUTC,
	}

	created, err := s.repository.Create(ctx, slotModify)
	if err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	return created, nil
}

// DeleteSlot удаляет слот. Пока в интервал слота запланирован активный
// заказ, удаление отклоняется — сначала заказ нужно снять.
func (s *Slot) DeleteSlot(ctx context.Context, slotID int64) error {
	if !isValidSlotID(slotID) {
		return ErrInvalidSlotID
	}

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		slotEntity, err := s.repository.GetByID(ctx, slotID)
		if err != nil {
			return fmt.Errorf("get slot: %w", err)
		}

		scheduledCount, err := s.repository.CountActiveAssignmentsWithin(ctx, slotEntity.MasterID, slotEntity.StartsAt, slotEntity.EndsAt)
		if err != nil {
			return fmt.Errorf("count scheduled orders: %w", err)
		}
		if scheduledCount > 0 {
			return ErrSlotHasOrder
		}

		err = s.repository.Delete(ctx, slotID)
		if err != nil {
			return fmt.Errorf("delete slot: %w", err)
		}
		return nil
	})

	return err
}

// ListSlots возвращает слоты мастера в диапазоне дат, отсортированные
// по началу. Нулевые границы диапазона означают открытый край.
func (s *Slot) ListSlots(ctx context.Context, masterID int64, from, to time.Time) ([]entities.Slot, error) {
	if !isValidMasterID(masterID) {
		return nil, ErrInvalidMasterID
	}
	if !isValidDateRange(from, to) {
		return nil, ErrInvalidDateRange
	}

	slots, err := s.repository.ListByMaster(ctx, masterID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	return slots, nil
}

// GetSlot используется координатором назначений для проверки явного слота.
func (s *Slot) GetSlot(ctx context.Context, slotID int64) (*entities.Slot, error) {
	if !isValidSlotID(slotID) {
		return nil, ErrInvalidSlotID
	}

	slotEntity, err := s.repository.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	return slotEntity, nil
}
