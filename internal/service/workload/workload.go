package workload

import (
	"context"
	"fmt"
	"math"
	"time"

	"dispatch/internal/entities"
	"dispatch/pkg/logger"
)

const dateKeyLayout = "2006-01-02"

type Workload struct {
	log         logger.Logger
	repository  Repository
	eligibility EligibilityService
	txManager   TxManager
}

func New(log logger.Logger, repository Repository, eligibility EligibilityService, txManager TxManager) *Workload {
	return &Workload{
		log:         log.With(),
		repository:  repository,
		eligibility: eligibility,
		txManager:   txManager,
	}
}

// Compute собирает сводку загрузки мастера на горизонте видимости:
// от начала текущего дня до now + horizon(master).
func (w *Workload) Compute(ctx context.Context, masterID int64, now time.Time) (*entities.WorkloadSnapshot, error) {
	if masterID <= 0 {
		return nil, ErrInvalidMasterID
	}

	var snapshot *entities.WorkloadSnapshot
	err := w.txManager.DoRepeatableRead(ctx, func(ctx context.Context) error {
		var err error
		snapshot, err = w.computeInTx(ctx, masterID, now)
		return err
	})
	if err != nil {
		return nil, err
	}

	return snapshot, nil
}

// ComputeAll перебирает всех известных мастеров внутри одной
// читающей транзакции: снимок согласован, назначение либо видно
// целиком, либо не видно вовсе.
func (w *Workload) ComputeAll(ctx context.Context, now time.Time) ([]entities.WorkloadSnapshot, error) {
	var snapshots []entities.WorkloadSnapshot

	err := w.txManager.DoRepeatableRead(ctx, func(ctx context.Context) error {
		masterIDs, err := w.repository.ListMasterIDs(ctx)
		if err != nil {
			return fmt.Errorf("list masters: %w", err)
		}

		snapshots = make([]entities.WorkloadSnapshot, 0, len(masterIDs))
		for _, masterID := range masterIDs {
			snapshot, err := w.computeInTx(ctx, masterID, now)
			if err != nil {
				return fmt.Errorf("compute workload for master %d: %w", masterID, err)
			}
			snapshots = append(snapshots, *snapshot)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return snapshots, nil
}

func (w *Workload) computeInTx(ctx context.Context, masterID int64, now time.Time) (*entities.WorkloadSnapshot, error) {
	horizon, err := w.eligibility.Horizon(ctx, masterID, now)
	if err != nil {
		w.log.With(
			logger.NewField("master", masterID),
			logger.NewField("error", err),
		).Warn("horizon unavailable, using base visibility window")
		horizon = entities.BaseHorizonHours * time.Hour
	}

	from := startOfDay(now)
	to := now.Add(horizon)

	slots, err := w.repository.ListSlots(ctx, masterID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}

	assignments, err := w.repository.ListActiveAssignments(ctx, masterID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}

	return buildSnapshot(masterID, now, slots, assignments), nil
}

func buildSnapshot(masterID int64, now time.Time, slots []entities.Slot, assignments []entities.Assignment) *entities.WorkloadSnapshot {
	snapshot := &entities.WorkloadSnapshot{
		MasterID:     masterID,
		TotalSlots:   len(slots),
		OrdersByDate: make(map[string]int),
	}

	for _, assignment := range assignments {
		if assignment.ScheduledAt != nil {
			snapshot.OrdersByDate[assignment.ScheduledAt.UTC().Format(dateKeyLayout)]++
		}
	}

	for i := range slots {
		if slotOccupied(slots[i], assignments) {
			snapshot.OccupiedSlots++
			continue
		}
		if snapshot.NextFreeSlot == nil && slots[i].EndsAt.After(now) {
			free := slots[i]
			snapshot.NextFreeSlot = &free
		}
	}

	snapshot.FreeSlots = snapshot.TotalSlots - snapshot.OccupiedSlots
	snapshot.WorkloadPercent = utilizationPercent(snapshot.OccupiedSlots, snapshot.TotalSlots)
	return snapshot
}

func slotOccupied(slot entities.Slot, assignments []entities.Assignment) bool {
	for _, assignment := range assignments {
		if assignment.ScheduledAt != nil && slot.Covers(*assignment.ScheduledAt) {
			return true
		}
	}
	return false
}

// utilizationPercent округлённый процент занятости; ноль слотов — ноль
// процентов, а не деление на ноль.
func utilizationPercent(occupied, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(occupied) / float64(total) * 100))
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
