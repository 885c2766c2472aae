package order

import "time"

type OrderDB struct {
	ID        int64
	Status    string
	MasterID  *int64
	FinalCost *float64
	Expenses  *float64
	CreatedAt time.Time
	UpdatedAt time.Time
}
