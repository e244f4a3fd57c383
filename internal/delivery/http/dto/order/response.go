package orderdto

import "time"

type CreateOrderResponse struct {
	PublicID string `json:"publicId"`
	Token    string `json:"token"`
}

type OrderViewResponse struct {
	PublicID              string            `json:"public_id"`
	AssetSymbol           string            `json:"asset_symbol"`
	Network               string            `json:"network"`
	AmountCrypto          float64           `json:"amount_crypto"`
	FiatCurrency          string            `json:"fiat_currency"`
	PayoutMethod          string            `json:"payout_method"`
	PayoutCountry         string            `json:"payout_country"`
	PayoutDetails         map[string]string `json:"payout_details"`
	DepositAddress        string            `json:"deposit_address"`
	Status                string            `json:"status"`
	ConfirmationsRequired int32             `json:"confirmations_required"`
	ConfirmationsCurrent  int32             `json:"confirmations_current"`
	Txid                  string            `json:"txid,omitempty"`
	ExplorerURL           string            `json:"explorer_url,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type RateResponse struct {
	ID           string    `json:"id"`
	AssetSymbol  string    `json:"asset_symbol"`
	Network      string    `json:"network"`
	FiatCurrency string    `json:"fiat_currency"`
	BuyRate      float64   `json:"buy_rate"`
	FeePct       float64   `json:"fee_pct"`
	FeeFlat      float64   `json:"fee_flat"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type AddressResponse struct {
	ID              string    `json:"id"`
	Network         string    `json:"network"`
	Address         string    `json:"address"`
	Status          string    `json:"status"`
	AssignedOrderID string    `json:"assigned_order_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type AdminOrderSummary struct {
	ID           string  `json:"id"`
	PublicID     string  `json:"public_id"`
	Status       string  `json:"status"`
	AssetSymbol  string  `json:"asset_symbol"`
	Network      string  `json:"network"`
	AmountCrypto float64 `json:"amount_crypto"`
	FiatCurrency string  `json:"fiat_currency"`
	Txid         string  `json:"txid,omitempty"`
}

type AdminOrderDetail struct {
	ID                    string            `json:"id"`
	PublicID              string            `json:"public_id"`
	Status                string            `json:"status"`
	AssetSymbol           string            `json:"asset_symbol"`
	Network               string            `json:"network"`
	AmountCrypto          float64           `json:"amount_crypto"`
	FiatCurrency          string            `json:"fiat_currency"`
	BuyRate               float64           `json:"buy_rate"`
	FeePct                float64           `json:"fee_pct"`
	FeeFlat               float64           `json:"fee_flat"`
	DepositAddress        string            `json:"deposit_address"`
	DepositSource         string            `json:"deposit_source"`
	PayoutMethod          string            `json:"payout_method"`
	PayoutCountry         string            `json:"payout_country"`
	PayoutDetails         map[string]string `json:"payout_details"`
	Txid                  string            `json:"txid,omitempty"`
	ExplorerURL           string            `json:"explorer_url,omitempty"`
	ConfirmationsRequired int32             `json:"confirmations_required"`
	ConfirmationsCurrent  int32             `json:"confirmations_current"`
	PayoutReference       string            `json:"payout_reference,omitempty"`
	AdminNote             string            `json:"admin_note,omitempty"`
	IPAddress             string            `json:"ip_address,omitempty"`
	CreatedAt             time.Time         `json:"created_at"`
	UpdatedAt             time.Time         `json:"updated_at"`
}
