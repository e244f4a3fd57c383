package orderdto

import "time"

// CreateOrderOutput is the only moment the token secret leaves the service;
// it is never re-issued.
type CreateOrderOutput struct {
	PublicID string
	Token    string
}

// OrderView is the customer-facing snapshot of an order. It carries neither
// the internal id nor the token secret, and its payout details are masked.
type OrderView struct {
	PublicID              string
	AssetSymbol           string
	Network               string
	AmountCrypto          float64
	FiatCurrency          string
	PayoutMethod          string
	PayoutCountry         string
	PayoutDetails         map[string]string
	DepositAddress        string
	Status                string
	ConfirmationsRequired int32
	ConfirmationsCurrent  int32
	Txid                  string
	ExplorerURL           string
	CreatedAt             time.Time
}
