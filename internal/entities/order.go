package entities

import "time"

// Order строка локальной реплики реестра заказов. Владелец данных —
// внешний сервис заказов, сюда статусы и суммы приходят через Kafka.
type Order struct {
	ID        int64
	Status    OrderStatusType
	MasterID  *int64
	FinalCost *float64
	Expenses  *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderStatusType string

const (
	OrderNew        OrderStatusType = "new"
	OrderProcessing OrderStatusType = "processing"
	OrderAssigned   OrderStatusType = "assigned"
	OrderInProgress OrderStatusType = "in_progress"
	OrderCompleted  OrderStatusType = "completed"
	OrderCancelled  OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// Pending заказ ждёт назначения и учитывается в анализе пропускной способности.
func (s OrderStatusType) Pending() bool {
	return s == OrderNew || s == OrderProcessing
}

// Terminal статус, после которого заказ больше не занимает слот мастера.
func (s OrderStatusType) Terminal() bool {
	return s == OrderCompleted || s == OrderCancelled
}

type OrderModify struct {
	ID        *int64
	Status    *OrderStatusType
	MasterID  *int64
	FinalCost *float64
	Expenses  *float64
	CreatedAt *time.Time
}
