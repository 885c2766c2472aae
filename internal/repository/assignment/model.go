package assignment

import "time"

type AssignmentDB struct {
	ID              int64
	OrderID         int64
	MasterID        int64
	Status          string
	ScheduledAt     *time.Time
	TransferredFrom *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AssignmentModifyDB struct {
	ID              *int64
	OrderID         *int64
	MasterID        *int64
	Status          *string
	ScheduledAt     *time.Time
	TransferredFrom *int64
	ClearSchedule   bool
}
