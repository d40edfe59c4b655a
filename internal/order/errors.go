package order

import "errors"

var (
	// ErrEmptySKU rejects order creation without a SKU.
	ErrEmptySKU = errors.New("sku id is required")
)
