package orderdto

type CreateOrderRequest struct {
	AssetSymbol  string  `json:"asset_symbol"`
	Network      string  `json:"network"`
	AmountCrypto float64 `json:"amount_crypto"`
	FiatCurrency string  `json:"fiat_currency"`
	PayoutMethod string  `json:"payout_method"`
}

type SubmitTxidRequest struct {
	Txid string `json:"txid"`
}

type UpdatePayoutRequest struct {
	PayoutMethod string            `json:"payout_method"`
	Country      string            `json:"country"`
	Details      map[string]string `json:"details"`
}

type OperatorPatchRequest struct {
	Status               string  `json:"status"`
	ConfirmationsCurrent int32   `json:"confirmations_current"`
	PayoutReference      *string `json:"payout_reference"`
	AdminNote            *string `json:"admin_note"`
}

type AddAddressRequest struct {
	Network   string   `json:"network"`
	Address   string   `json:"address"`
	Addresses []string `json:"addresses"`
}

type DeleteByIDRequest struct {
	ID string `json:"id"`
}

type RateRequest struct {
	ID           string  `json:"id"`
	AssetSymbol  string  `json:"asset_symbol"`
	Network      string  `json:"network"`
	FiatCurrency string  `json:"fiat_currency"`
	BuyRate      float64 `json:"buy_rate"`
	FeePct       float64 `json:"fee_pct"`
	FeeFlat      float64 `json:"fee_flat"`
}

type SettingsRequest struct {
	DepositMode       string            `json:"deposit_mode"`
	FallbackToFixed   bool              `json:"fallback_to_fixed"`
	FixedAddresses    map[string]string `json:"fixed_addresses"`
	ExplorerTemplates map[string]string `json:"explorer_templates"`
}
