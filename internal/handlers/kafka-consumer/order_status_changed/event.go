package order_status_changed

// createdEvent тело сообщения топика order.status.changed. Суммы
// присутствуют только в событиях завершения заказа.
type createdEvent struct {
	OrderID   int64    `json:"order_id"`
	Status    string   `json:"status"`
	MasterID  *int64   `json:"master_id,omitempty"`
	FinalCost *float64 `json:"final_cost,omitempty"`
	Expenses  *float64 `json:"expenses,omitempty"`
}
