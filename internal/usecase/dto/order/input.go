package orderdto

type CreateOrderInput struct {
	AssetSymbol  string
	Network      string
	AmountCrypto float64
	FiatCurrency string
	PayoutMethod string
	ClientIP     string
}

type UpdatePayoutInput struct {
	PayoutMethod string
	Country      string
	Details      map[string]string
}
