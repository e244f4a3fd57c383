package domain

import "context"

// OrderEvent is published on order creation and on every status change.
type OrderEvent struct {
	PublicID     string  `json:"public_id"`
	Status       string  `json:"status"`
	AssetSymbol  string  `json:"asset_symbol"`
	Network      string  `json:"network"`
	AmountCrypto float64 `json:"amount_crypto"`
	FiatCurrency string  `json:"fiat_currency"`
}

type OrderEventPublisher interface {
	PublishOrderEvent(ctx context.Context, event OrderEvent) error
}
