package catalog

import "errors"

var (
	ErrGigNotFound       = errors.New("gig not found")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
)
