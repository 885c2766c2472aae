package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"dispatch/internal/entities"
	"dispatch/internal/service/order"
)

const orderColumns = "id, status, master_id, final_cost, expenses, created_at, updated_at"

// Repository локальная реплика реестра заказов, наполняется консьюмером
// событий о смене статуса.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Upsert вставляет или обновляет строку заказа. Поля, не пришедшие в
// событии, сохраняют прежние значения.
func (r *Repository) Upsert(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	query := `
		INSERT INTO orders (id, status, master_id, final_cost, expenses)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE
		SET status = EXCLUDED.status,
		    master_id = COALESCE(EXCLUDED.master_id, orders.master_id),
		    final_cost = COALESCE(EXCLUDED.final_cost, orders.final_cost),
		    expenses = COALESCE(EXCLUDED.expenses, orders.expenses),
		    updated_at = NOW()
		RETURNING ` + orderColumns + `
	`

	var status *string
	if orderModify.Status != nil {
		s := orderModify.Status.String()
		status = &s
	}

	var orderDB OrderDB
	err := r.querier.QueryRow(
		ctx,
		query,
		orderModify.ID,
		status,
		orderModify.MasterID,
		orderModify.FinalCost,
		orderModify.Expenses,
	).Scan(
		&orderDB.ID,
		&orderDB.Status,
		&orderDB.MasterID,
		&orderDB.FinalCost,
		&orderDB.Expenses,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository upsert error: %w", err)
	}

	return ToDomain(&orderDB), nil
}

func (r *Repository) GetByID(ctx context.Context, orderID int64) (*entities.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1
	`

	var orderDB OrderDB
	err := r.querier.QueryRow(ctx, query, orderID).Scan(
		&orderDB.ID,
		&orderDB.Status,
		&orderDB.MasterID,
		&orderDB.FinalCost,
		&orderDB.Expenses,
		&orderDB.CreatedAt,
		&orderDB.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(&orderDB), nil
}
