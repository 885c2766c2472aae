package capacity

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
	"dispatch/internal/service/capacity"
)

var activeStatuses = []string{"assigned", "in_progress", "transferred"}

// Repository агрегаты по дню для анализа пропускной способности.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// DayCapacity слоты дня, занятость и разбивка мастеров. Занятым считается
// слот, в интервал которого попадает активное назначение того же мастера.
func (r *Repository) DayCapacity(ctx context.Context, day time.Time) (*capacity.DayCapacity, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	query := `
		WITH day_slots AS (
			SELECT
				s.id,
				s.master_id,
				EXISTS (
					SELECT 1
					FROM assignments a
					WHERE a.master_id = s.master_id
					  AND a.status = ANY($3)
					  AND a.scheduled_at >= s.starts_at
					  AND a.scheduled_at < s.ends_at
				) AS occupied
			FROM slots s
			WHERE s.starts_at >= $1
			  AND s.starts_at < $2
		),
		known_masters AS (
			SELECT master_id FROM slots
			UNION
			SELECT master_id FROM assignments WHERE status = ANY($3)
			UNION
			SELECT master_id FROM tier_states
		)
		SELECT
			(SELECT COUNT(*) FROM day_slots),
			(SELECT COUNT(*) FROM day_slots WHERE occupied),
			(SELECT COUNT(*) FROM known_masters),
			(SELECT COUNT(DISTINCT master_id) FROM day_slots),
			(SELECT COUNT(DISTINCT master_id) FROM day_slots WHERE NOT occupied)
	`

	var dayCapacity capacity.DayCapacity
	err := r.querier.QueryRow(ctx, query, dayStart, dayEnd, activeStatuses).Scan(
		&dayCapacity.TotalSlots,
		&dayCapacity.OccupiedSlots,
		&dayCapacity.TotalMasters,
		&dayCapacity.MastersWithAvailability,
		&dayCapacity.FreeMasters,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected capacity repository day error: %w", err)
	}

	return &dayCapacity, nil
}

func (r *Repository) PendingOrders(ctx context.Context) (*entities.PendingOrders, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE status = 'new'),
			COUNT(*) FILTER (WHERE status = 'processing')
		FROM orders
	`

	var pending entities.PendingOrders
	err := r.querier.QueryRow(ctx, query).Scan(
		&pending.NewOrders,
		&pending.ProcessingOrders,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected capacity repository pending error: %w", err)
	}
	pending.TotalPending = pending.NewOrders + pending.ProcessingOrders

	return &pending, nil
}
