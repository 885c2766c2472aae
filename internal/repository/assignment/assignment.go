package assignment

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/repository"
	"dispatch/internal/service/assignment"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var activeStatuses = []string{"assigned", "in_progress", "transferred"}

// имена ограничений из миграций: по ним различаются конфликтующие записи
const (
	constraintActiveOrder    = "uq_assignments_active_order"
	constraintMasterSchedule = "uq_assignments_master_schedule"
)

const assignmentColumns = "id, order_id, master_id, status, scheduled_at, transferred_from, created_at, updated_at"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) GetActiveByOrderID(ctx context.Context, orderID int64) (*entities.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE order_id = $1
		  AND status = ANY($2)
	`

	assignmentDB, err := r.scanOne(r.querier.QueryRow(ctx, query, orderID, activeStatuses))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrNotAssigned
		}
		return nil, fmt.Errorf("unexpected assignment repository get error: %w", err)
	}

	return ToDomain(assignmentDB), nil
}

func (r *Repository) Create(ctx context.Context, assignmentModifyEntity entities.AssignmentModify) (*entities.Assignment, error) {
	assignmentModifyDB := FromDomainModify(&assignmentModifyEntity)

	query := `
		INSERT INTO assignments (order_id, master_id, status, scheduled_at, transferred_from)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + assignmentColumns + `
	`

	assignmentDB, err := r.scanOne(r.querier.QueryRow(
		ctx,
		query,
		assignmentModifyDB.OrderID,
		assignmentModifyDB.MasterID,
		assignmentModifyDB.Status,
		assignmentModifyDB.ScheduledAt,
		assignmentModifyDB.TransferredFrom,
	))
	if err != nil {
		return nil, mapConflict(err, "create")
	}

	return ToDomain(assignmentDB), nil
}

func (r *Repository) Update(ctx context.Context, assignmentModifyEntity entities.AssignmentModify) (*entities.Assignment, error) {
	assignmentModifyDB := FromDomainModify(&assignmentModifyEntity)

	builder := qb.
		Update("assignments")

	// опциональные поля
	if assignmentModifyDB.MasterID != nil {
		builder = builder.Set("master_id", assignmentModifyDB.MasterID)
	}
	if assignmentModifyDB.Status != nil {
		builder = builder.Set("status", assignmentModifyDB.Status)
	}
	if assignmentModifyDB.ScheduledAt != nil {
		builder = builder.Set("scheduled_at", assignmentModifyDB.ScheduledAt)
	} else if assignmentModifyDB.ClearSchedule {
		builder = builder.Set("scheduled_at", nil)
	}
	if assignmentModifyDB.TransferredFrom != nil {
		builder = builder.Set("transferred_from", assignmentModifyDB.TransferredFrom)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": assignmentModifyDB.ID}).
		Suffix("RETURNING " + assignmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	assignmentDB, err := r.scanOne(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrNotAssigned
		}
		return nil, mapConflict(err, "update")
	}

	return ToDomain(assignmentDB), nil
}

// Release снимает мастера с заказа: статус unassigned, расписание и
// мастер очищаются, запись остаётся для истории.
func (r *Repository) Release(ctx context.Context, orderID int64) (*entities.Assignment, error) {
	query := `
		UPDATE assignments
		SET status = 'unassigned',
		    scheduled_at = NULL,
		    updated_at = NOW()
		WHERE order_id = $1
		  AND status = ANY($2)
		RETURNING ` + assignmentColumns + `
	`

	assignmentDB, err := r.scanOne(r.querier.QueryRow(ctx, query, orderID, activeStatuses))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrNotAssigned
		}
		return nil, fmt.Errorf("unexpected assignment repository release error: %w", err)
	}

	return ToDomain(assignmentDB), nil
}

func (r *Repository) UpdateStatusByOrderID(ctx context.Context, orderID int64, status entities.AssignmentStatusType) (*entities.Assignment, error) {
	query := `
		UPDATE assignments
		SET status = $3,
		    updated_at = NOW()
		WHERE order_id = $1
		  AND status = ANY($2)
		RETURNING ` + assignmentColumns + `
	`

	assignmentDB, err := r.scanOne(r.querier.QueryRow(ctx, query, orderID, activeStatuses, status.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, assignment.ErrNotAssigned
		}
		return nil, fmt.Errorf("unexpected assignment repository update status error: %w", err)
	}

	return ToDomain(assignmentDB), nil
}

func (r *Repository) CountActiveScheduledWithin(ctx context.Context, masterID int64, from, to time.Time, excludeOrderID int64) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM assignments
		WHERE master_id = $1
		  AND status = ANY($2)
		  AND scheduled_at >= $3
		  AND scheduled_at < $4
		  AND order_id != $5
	`

	var count int64
	err := r.querier.QueryRow(ctx, query, masterID, activeStatuses, from, to, excludeOrderID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected assignment repository count error: %w", err)
	}

	return count, nil
}

func (r *Repository) scanOne(row pgx.Row) (*AssignmentDB, error) {
	var assignmentDB AssignmentDB
	err := row.Scan(
		&assignmentDB.ID,
		&assignmentDB.OrderID,
		&assignmentDB.MasterID,
		&assignmentDB.Status,
		&assignmentDB.ScheduledAt,
		&assignmentDB.TransferredFrom,
		&assignmentDB.CreatedAt,
		&assignmentDB.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &assignmentDB, nil
}

// mapConflict переводит нарушения уникальных индексов в доменные ошибки:
// проигравший гонку коммит выглядит так же, как проигравшая проверка.
func mapConflict(err error, op string) error {
	if repository.IsPgErrorWithConstraint(err, repository.PgErrUniqueViolation, constraintActiveOrder) {
		return assignment.ErrAlreadyAssigned
	}
	if repository.IsPgErrorWithConstraint(err, repository.PgErrUniqueViolation, constraintMasterSchedule) {
		return assignment.ErrSlotTaken
	}
	return fmt.Errorf("unexpected assignment repository %s error: %w", op, err)
}
