package services

import "errors"

// Sentinel errors returned by services. Handlers translate these to HTTP
// statuses with errors.Is; raw driver errors never cross the handler boundary.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrContestFull       = errors.New("contest is full")
	ErrInsufficientFunds = errors.New("insufficient wallet balance")
)
