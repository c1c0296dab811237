package order

import "errors"

var (
	ErrEmptyOrder = errors.New("order has no line items")
)
