package domain

import "time"

// Rate is one price quote row for an (asset, network, fiat) triple. Multiple
// historical rows may exist for the same key; only the most recently updated
// one is authoritative.
type Rate struct {
	ID           string
	AssetSymbol  string
	Network      string
	FiatCurrency string
	BuyRate      float64
	FeePct       float64
	FeeFlat      float64
	UpdatedAt    time.Time
}

type Quote struct {
	Gross  float64
	Fee    float64
	Payout float64
}

// Quote computes the advisory fiat payout for an amount of crypto. The
// authoritative numbers are the snapshot stored on the order at creation.
func (r *Rate) Quote(amountCrypto float64) Quote {
	gross := amountCrypto * r.BuyRate
	fee := r.FeePct*gross + r.FeeFlat
	payout := gross - fee
	if payout < 0 {
		payout = 0
	}
	return Quote{Gross: gross, Fee: fee, Payout: payout}
}
