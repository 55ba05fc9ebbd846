package delivery

import "errors"

var (
	ErrInvalidOrderID = errors.New("invalid order id")

	ErrDeliveryNotFound  = errors.New("active delivery not found")
	ErrOrderStateChanged = errors.New("order state changed concurrently")
)
