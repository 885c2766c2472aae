package entities

import "time"

type Assignment struct {
	ID              int64
	OrderID         int64
	MasterID        int64
	Status          AssignmentStatusType
	ScheduledAt     *time.Time
	TransferredFrom *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type AssignmentStatusType string

const (
	AssignmentUnassigned  AssignmentStatusType = "unassigned"
	AssignmentAssigned    AssignmentStatusType = "assigned"
	AssignmentInProgress  AssignmentStatusType = "in_progress"
	AssignmentCompleted   AssignmentStatusType = "completed"
	AssignmentTransferred AssignmentStatusType = "transferred"
)

func (s AssignmentStatusType) String() string {
	return string(s)
}

// Active true пока назначение удерживает мастера и его слот.
// Завершённый или снятый заказ слот не занимает.
func (s AssignmentStatusType) Active() bool {
	switch s {
	case AssignmentAssigned, AssignmentInProgress, AssignmentTransferred:
		return true
	default:
		return false
	}
}

type AssignmentModify struct {
	ID              *int64
	OrderID         *int64
	MasterID        *int64
	Status          *AssignmentStatusType
	ScheduledAt     *time.Time
	TransferredFrom *int64
	// ClearSchedule сбрасывает scheduled_at в NULL; nil в ScheduledAt
	// означает "не трогать колонку", а не "очистить"
	ClearSchedule bool
}
