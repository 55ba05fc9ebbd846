package locator

import "errors"

var (
	ErrInvalidPickupPoint     = errors.New("invalid pickup point")
	ErrInvalidFreshnessWindow = errors.New("invalid freshness window")

	ErrNoLocationFix = errors.New("driver has no location fix")
)
