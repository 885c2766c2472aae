package slot

import "time"

type SlotDB struct {
	ID        int64
	MasterID  int64
	StartsAt  time.Time
	EndsAt    time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SlotModifyDB struct {
	ID       *int64
	MasterID *int64
	StartsAt *time.Time
	EndsAt   *time.Time
}
