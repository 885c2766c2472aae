package workload

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

var activeStatuses = []string{"assigned", "in_progress", "transferred"}

// Repository читающая сторона агрегатора загрузки: слоты и активные
// назначения без какой-либо записи.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// ListMasterIDs мастера, известные движку: объявившие слоты, держащие
// активные назначения или имеющие состояние дистанционки.
func (r *Repository) ListMasterIDs(ctx context.Context) ([]int64, error) {
	query := `
		SELECT master_id FROM slots
		UNION
		SELECT master_id FROM assignments WHERE status = ANY($1)
		UNION
		SELECT master_id FROM tier_states
		ORDER BY master_id
	`

	rows, err := r.querier.Query(ctx, query, activeStatuses)
	if err != nil {
		return nil, fmt.Errorf("unexpected workload repository list masters error: %w", err)
	}
	defer rows.Close()

	var masterIDs []int64
	for rows.Next() {
		var masterID int64
		if err := rows.Scan(&masterID); err != nil {
			return nil, fmt.Errorf("unexpected workload repository scan error: %w", err)
		}
		masterIDs = append(masterIDs, masterID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected workload repository rows error: %w", err)
	}

	return masterIDs, nil
}

func (r *Repository) ListSlots(ctx context.Context, masterID int64, from, to time.Time) ([]entities.Slot, error) {
	query := `
		SELECT id, master_id, starts_at, ends_at, created_at, updated_at
		FROM slots
		WHERE master_id = $1
		  AND starts_at >= $2
		  AND starts_at < $3
		ORDER BY starts_at ASC
	`

	rows, err := r.querier.Query(ctx, query, masterID, from, to)
	if err != nil {
		return nil, fmt.Errorf("unexpected workload repository list slots error: %w", err)
	}
	defer rows.Close()

	var slots []entities.Slot
	for rows.Next() {
		var slot entities.Slot
		err := rows.Scan(
			&slot.ID,
			&slot.MasterID,
			&slot.StartsAt,
			&slot.EndsAt,
			&slot.CreatedAt,
			&slot.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected workload repository scan error: %w", err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected workload repository rows error: %w", err)
	}

	return slots, nil
}

// ListActiveAssignments активные назначения мастера: запланированные в
// окно [from, to) плюс ещё не запланированные.
func (r *Repository) ListActiveAssignments(ctx context.Context, masterID int64, from, to time.Time) ([]entities.Assignment, error) {
	query := `
		SELECT id, order_id, master_id, status, scheduled_at, transferred_from, created_at, updated_at
		FROM assignments
		WHERE master_id = $1
		  AND status = ANY($2)
		  AND (scheduled_at IS NULL OR (scheduled_at >= $3 AND scheduled_at < $4))
		ORDER BY scheduled_at ASC NULLS LAST
	`

	rows, err := r.querier.Query(ctx, query, masterID, activeStatuses, from, to)
	if err != nil {
		return nil, fmt.Errorf("unexpected workload repository list assignments error: %w", err)
	}
	defer rows.Close()

	var assignments []entities.Assignment
	for rows.Next() {
		var assignment entities.Assignment
		var status string
		err := rows.Scan(
			&assignment.ID,
			&assignment.OrderID,
			&assignment.MasterID,
			&status,
			&assignment.ScheduledAt,
			&assignment.TransferredFrom,
			&assignment.CreatedAt,
			&assignment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected workload repository scan error: %w", err)
		}
		assignment.Status = entities.AssignmentStatusType(status)
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected workload repository rows error: %w", err)
	}

	return assignments, nil
}
