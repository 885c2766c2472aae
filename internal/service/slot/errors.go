package slot

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidMasterID       = errors.New("invalid master id")
	ErrInvalidSlotID         = errors.New("invalid slot id")
	ErrInvalidTimeRange      = errors.New("invalid time range")
	ErrInvalidDateRange      = errors.New("invalid date range")

	ErrOverlap      = errors.New("slot overlaps with existing availability")
	ErrSlotHasOrder = errors.New("slot has a scheduled order")
	ErrSlotNotFound = errors.New("slot not found")
)
