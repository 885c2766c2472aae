package order

import "dispatch/internal/entities"

func ToDomain(o *OrderDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:        o.ID,
		Status:    entities.OrderStatusType(o.Status),
		MasterID:  o.MasterID,
		FinalCost: o.FinalCost,
		Expenses:  o.Expenses,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
