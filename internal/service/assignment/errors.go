package assignment

import "errors"

var (
	ErrInvalidOrderID  = errors.New("invalid order id")
	ErrInvalidMasterID = errors.New("invalid master id")
	ErrInvalidSlotID   = errors.New("invalid slot id")

	ErrAlreadyAssigned = errors.New("order already has an active assignment")
	ErrSlotTaken       = errors.New("slot is already occupied by another order")
	ErrSlotNotOwned    = errors.New("slot does not belong to the master")
	ErrNoCapacity      = errors.New("master has no free slots")
	ErrNotAssigned     = errors.New("order has no active assignment")
	ErrBeyondHorizon   = errors.New("slot is beyond the master visibility horizon")
	ErrUndefinedStatus = errors.New("undefined order status")
)
