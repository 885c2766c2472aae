package slot

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/slot"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// activeStatuses статусы назначений, удерживающие слот.
var activeStatuses = []string{"assigned", "in_progress", "transferred"}

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, slotModifyEntity entities.SlotModify) (*entities.Slot, error) {
	slotModifyDB := FromDomainModify(&slotModifyEntity)

	query := `
		INSERT INTO slots (master_id, starts_at, ends_at)
		VALUES ($1, $2, $3)
		RETURNING id, master_id, starts_at, ends_at, created_at, updated_at
	`

	var slotDB SlotDB
	err := r.querier.QueryRow(
		ctx,
		query,
		slotModifyDB.MasterID,
		slotModifyDB.StartsAt,
		slotModifyDB.EndsAt,
	).Scan(
		&slotDB.ID,
		&slotDB.MasterID,
		&slotDB.StartsAt,
		&slotDB.EndsAt,
		&slotDB.CreatedAt,
		&slotDB.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrExclusionViolation) {
			return nil, slot.ErrOverlap
		}
		return nil, fmt.Errorf("unexpected slot repository create error: %w", err)
	}

	return ToDomain(&slotDB), nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM slots WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected slot repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return slot.ErrSlotNotFound
	}

	return nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Slot, error) {
	query := `
		SELECT id, master_id, starts_at, ends_at, created_at, updated_at
		FROM slots
		WHERE id = $1
	`

	var slotDB SlotDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&slotDB.ID,
		&slotDB.MasterID,
		&slotDB.StartsAt,
		&slotDB.EndsAt,
		&slotDB.CreatedAt,
		&slotDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, slot.ErrSlotNotFound
		}
		return nil, fmt.Errorf("unexpected slot repository get error: %w", err)
	}

	return ToDomain(&slotDB), nil
}

func (r *Repository) ListByMaster(ctx context.Context, masterID int64, from, to time.Time) ([]entities.Slot, error) {
	builder := qb.
		Select("id", "master_id", "starts_at", "ends_at", "created_at", "updated_at").
		From("slots").
		Where(sq.Eq{"master_id": masterID}).
		OrderBy("starts_at ASC")

	// опциональные границы диапазона
	if !from.IsZero() {
		builder = builder.Where(sq.GtOrEq{"starts_at": from})
	}
	if !to.IsZero() {
		builder = builder.Where(sq.Lt{"starts_at": to})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected slot repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected slot repository list error: %w", err)
	}
	defer rows.Close()

	var slots []entities.Slot
	for rows.Next() {
		var slotDB SlotDB
		err := rows.Scan(
			&slotDB.ID,
			&slotDB.MasterID,
			&slotDB.StartsAt,
			&slotDB.EndsAt,
			&slotDB.CreatedAt,
			&slotDB.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected slot repository scan error: %w", err)
		}
		slots = append(slots, *ToDomain(&slotDB))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected slot repository rows error: %w", err)
	}

	return slots, nil
}

func (r *Repository) CountActiveAssignmentsWithin(ctx context.Context, masterID int64, from, to time.Time) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM assignments
		WHERE master_id = $1
		  AND status = ANY($2)
		  AND scheduled_at >= $3
		  AND scheduled_at < $4
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, masterID, activeStatuses, from, to).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected slot repository count assignments error: %w", err)
	}

	return count, nil
}
