package domain

import "errors"

// Domain errors
var (
	ErrNotFound         = errors.New("resource not found")
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidMonth     = errors.New("month must be in YYYY-MM format")
	ErrInvalidTab       = errors.New("unknown dashboard tab")
	ErrInvalidScope     = errors.New("scope must be THIS, FUTURE or ALL")
	ErrInvalidAmount    = errors.New("amount must be positive")
	ErrInvalidSelection = errors.New("invalid filter selection")
	ErrStaleLoad        = errors.New("load superseded by a newer request")
	ErrBudgetBelowFloor = errors.New("budget is below the amount committed by recurring templates")
	ErrSplitPercentages = errors.New("split percentages must sum to 100%")
)
