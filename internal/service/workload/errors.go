package workload

import "errors"

var ErrInvalidMasterID = errors.New("invalid master id")
