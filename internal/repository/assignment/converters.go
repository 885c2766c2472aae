package assignment

import "dispatch/internal/entities"

func ToDomain(a *AssignmentDB) *entities.Assignment {
	if a == nil {
		return nil
	}
	return &entities.Assignment{
		ID:              a.ID,
		OrderID:         a.OrderID,
		MasterID:        a.MasterID,
		Status:          entities.AssignmentStatusType(a.Status),
		ScheduledAt:     a.ScheduledAt,
		TransferredFrom: a.TransferredFrom,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func FromDomainModify(a *entities.AssignmentModify) *AssignmentModifyDB {
	if a == nil {
		return nil
	}
	assignmentModifyDB := &AssignmentModifyDB{
		ID:              a.ID,
		OrderID:         a.OrderID,
		MasterID:        a.MasterID,
		ScheduledAt:     a.ScheduledAt,
		TransferredFrom: a.TransferredFrom,
		ClearSchedule:   a.ClearSchedule,
	}
	if a.Status != nil {
		status := a.Status.String()
		assignmentModifyDB.Status = &status
	}
	return assignmentModifyDB
}
