package domain

import "time"

type OrderStatus string

const (
	StatusPendingDeposit   OrderStatus = "pending_deposit"
	StatusDetecting        OrderStatus = "detecting"
	StatusConfirming       OrderStatus = "confirming"
	StatusPayoutProcessing OrderStatus = "payout_processing"
	StatusCompleted        OrderStatus = "completed"
	StatusHold             OrderStatus = "hold"
	StatusRejected         OrderStatus = "rejected"
)

// ValidStatus reports whether s is one of the seven workflow statuses.
// Operators drive settlement manually, so this is the only guard applied to
// operator-set statuses: no transition graph is enforced.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPendingDeposit, StatusDetecting, StatusConfirming,
		StatusPayoutProcessing, StatusCompleted, StatusHold, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether the order can no longer be mutated by the customer.
func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

type DepositSource string

const (
	DepositSourceFixed DepositSource = "fixed"
	DepositSourcePool  DepositSource = "pool"
)

// RateSnapshot holds the commercial terms fixed at order creation.
// They are never re-resolved, even if the rate table changes later.
type RateSnapshot struct {
	BuyRate float64
	FeePct  float64
	FeeFlat float64
}

type Order struct {
	ID          string
	PublicID    string
	TokenSecret string

	AssetSymbol  string
	Network      string
	AmountCrypto float64
	FiatCurrency string
	RateSnapshot RateSnapshot

	DepositAddress       string
	DepositSource        DepositSource
	DepositPoolAddressID string

	PayoutMethod  string
	PayoutCountry string
	PayoutDetails map[string]string

	Txid string

	Status                OrderStatus
	ConfirmationsRequired int32
	ConfirmationsCurrent  int32
	PayoutReference       string
	AdminNote             string

	IPAddress string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type OrderFilters struct {
	Status  string
	Network string
	Search  string
}

// OperatorPatch carries the fields an operator may set during manual settlement.
type OperatorPatch struct {
	Status               OrderStatus
	ConfirmationsCurrent int32
	PayoutReference      string
	AdminNote            string
}
