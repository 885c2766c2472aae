package eligibility

import "errors"

var (
	ErrInvalidMasterID  = errors.New("invalid master id")
	ErrInvalidTierLevel = errors.New("invalid tier level")
	ErrInvalidThreshold = errors.New("invalid threshold value")
	ErrMasterNotFound   = errors.New("master not found")
)
