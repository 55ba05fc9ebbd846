package dispatcher

import "errors"

var (
	ErrNoJob           = errors.New("no visible dispatch job")
	ErrDuplicateJob    = errors.New("dispatch job for order already in flight")
	ErrJobStateChanged = errors.New("dispatch job state changed concurrently")
	ErrInvalidOrderID  = errors.New("invalid order id")
)
