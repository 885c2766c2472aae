package stats

import (
	"context"
	"fmt"
	"time"

	"dispatch/internal/entities"
)

// Repository показатели мастера поверх локальной реплики реестра заказов.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Collect три скользящих агрегата одним запросом: средний чек последних
// десяти завершённых заказов, выручка за сегодня и чистый оборот за
// десять дней.
func (r *Repository) Collect(ctx context.Context, masterID int64, now time.Time) (*entities.PerformanceStats, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	turnoverFrom := dayStart.AddDate(0, 0, -10)

	query := `
		SELECT
			COALESCE((
				SELECT AVG(final_cost)
				FROM (
					SELECT final_cost
					FROM orders
					WHERE master_id = $1
					  AND status = 'completed'
					  AND final_cost IS NOT NULL
					ORDER BY updated_at DESC
					LIMIT 10
				) recent
			), 0),
			COALESCE((
				SELECT SUM(final_cost)
				FROM orders
				WHERE master_id = $1
				  AND status = 'completed'
				  AND final_cost IS NOT NULL
				  AND updated_at >= $2
			), 0),
			COALESCE((
				SELECT SUM(final_cost - COALESCE(expenses, 0))
				FROM orders
				WHERE master_id = $1
				  AND status = 'completed'
				  AND final_cost IS NOT NULL
				  AND updated_at >= $3
			), 0)
	`

	statsEntity := entities.PerformanceStats{MasterID: masterID}
	err := r.querier.QueryRow(ctx, query, masterID, dayStart, turnoverFrom).Scan(
		&statsEntity.AverageCheck,
		&statsEntity.DailyRevenue,
		&statsEntity.NetTurnover10d,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository collect error: %w", err)
	}

	return &statsEntity, nil
}

func (r *Repository) ListMasterIDs(ctx context.Context) ([]int64, error) {
	query := `
		SELECT master_id FROM tier_states
		UNION
		SELECT master_id FROM slots
		UNION
		SELECT master_id FROM orders WHERE master_id IS NOT NULL
		ORDER BY master_id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected stats repository list masters error: %w", err)
	}
	defer rows.Close()

	var masterIDs []int64
	for rows.Next() {
		var masterID int64
		if err := rows.Scan(&masterID); err != nil {
			return nil, fmt.Errorf("unexpected stats repository scan error: %w", err)
		}
		masterIDs = append(masterIDs, masterID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected stats repository rows error: %w", err)
	}

	return masterIDs, nil
}
