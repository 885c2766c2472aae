package slot

import "dispatch/internal/entities"

func ToDomain(s *SlotDB) *entities.Slot {
	if s == nil {
		return nil
	}
	return &entities.Slot{
		ID:        s.ID,
		MasterID:  s.MasterID,
		StartsAt:  s.StartsAt,
		EndsAt:    s.EndsAt,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func FromDomainModify(s *entities.SlotModify) *SlotModifyDB {
	if s == nil {
		return nil
	}
	return &SlotModifyDB{
		ID:       s.ID,
		MasterID: s.MasterID,
		StartsAt: s.StartsAt,
		EndsAt:   s.EndsAt,
	}
}
