package entities

import "time"

// Slot объявленное мастером окно доступности. StartsAt и EndsAt — полные
// моменты времени одного календарного дня, интервал полуоткрытый [StartsAt, EndsAt).
type Slot struct {
	ID        int64
	MasterID  int64
	StartsAt  time.Time
	EndsAt    time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

type SlotModify struct {
	ID       *int64
	MasterID *int64
	StartsAt *time.Time
	EndsAt   *time.Time
}

// Day возвращает календарный день слота (UTC, обнулённое время).
func (s Slot) Day() time.Time {
	y, m, d := s.StartsAt.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Overlaps сравнивает полуоткрытые интервалы: соприкасающиеся границы
// пересечением не считаются.
func (s Slot) Overlaps(startsAt, endsAt time.Time) bool {
	return s.StartsAt.Before(endsAt) && startsAt.Before(s.EndsAt)
}

// Covers true если момент попадает в интервал слота.
func (s Slot) Covers(at time.Time) bool {
	return !at.Before(s.StartsAt) && at.Before(s.EndsAt)
}
