package domain

import "time"

type AddressStatus string

const (
	AddressUnused   AddressStatus = "unused"
	AddressAssigned AddressStatus = "assigned"
)

// PoolAddress is a pre-uploaded deposit address consumed one-per-order.
// It transitions from unused to assigned exactly once and is never reused.
type PoolAddress struct {
	ID              string
	Network         string
	Address         string
	Status          AddressStatus
	AssignedOrderID string
	CreatedAt       time.Time
}
