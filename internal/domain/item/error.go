package item

import "errors"

var (
	ErrNotFound     = errors.New("item not found")
	ErrInvalidInput = errors.New("invalid item data")
)
