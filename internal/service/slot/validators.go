package slot

import "time"

func isValidMasterID(id int64) bool {
	return id > 0
}

func isValidSlotID(id int64) bool {
	return id > 0
}

// isValidInterval требует непустой полуоткрытый интервал в пределах
// одного календарного дня.
func isValidInterval(startsAt, endsAt time.Time) bool {
	if startsAt.IsZero() || endsAt.IsZero() {
		return false
	}
	if !startsAt.Before(endsAt) {
		return false
	}

	sy, sm, sd := startsAt.UTC().Date()
	ey, em, ed := endsAt.UTC().Date()
	return sy == ey && sm == em && sd == ed
}

func isValidDateRange(from, to time.Time) bool {
	if from.IsZero() || to.IsZero() {
		return true // открытый диапазон допустим
	}
	return !to.Before(from)
}
