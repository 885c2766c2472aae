package entities

// WorkloadSnapshot расчётная сводка загрузки мастера, нигде не хранится.
type WorkloadSnapshot struct {
	MasterID        int64
	TotalSlots      int
	OccupiedSlots   int
	FreeSlots       int
	WorkloadPercent int
	NextFreeSlot    *Slot
	// OrdersByDate количество активных назначений по дням, ключ "2006-01-02".
	OrdersByDate map[string]int
}
