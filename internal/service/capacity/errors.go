package capacity

import "errors"

var ErrInvalidDay = errors.New("invalid day")
