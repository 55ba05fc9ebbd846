package order_status_changed

import "errors"

var ErrUndefinedStatus = errors.New("undefined order status")
