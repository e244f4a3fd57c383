package domain

import "errors"

var (
	ErrValidation         = errors.New("invalid request")
	ErrRateMissing        = errors.New("rate missing for this pair")
	ErrAddressUnavailable = errors.New("no deposit addresses available")
	// ErrOrderNotFound covers both an unknown public id and a token mismatch,
	// deliberately indistinguishable so a guesser cannot confirm an order exists.
	ErrOrderNotFound = errors.New("order not found")
	ErrOrderLocked   = errors.New("order locked")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrThrottled     = errors.New("too many requests")
)
