package domain

import "context"

type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) error
	GetOrderByID(ctx context.Context, orderID string) (*Order, error)
	GetOrderByPublicID(ctx context.Context, publicID string) (*Order, error)
	// UpdateTxid stores the submitted txid byte-for-byte and forces the status.
	UpdateTxid(ctx context.Context, orderID, txid string, newStatus OrderStatus) error
	UpdatePayout(ctx context.Context, orderID, payoutMethod, country string, details map[string]string) error
	UpdateSettlement(ctx context.Context, orderID string, patch OperatorPatch) error
	ListOrders(ctx context.Context, filters OrderFilters) ([]*Order, error)
	// DeleteOrder exists only to compensate a failed pool binding during creation.
	DeleteOrder(ctx context.Context, orderID string) error
}

type AddressRepository interface {
	// ClaimUnused atomically transitions the oldest unused address for the
	// network to assigned. At most one concurrent caller wins a given row.
	// Returns nil when the pool has no unused address for the network.
	ClaimUnused(ctx context.Context, network string) (*PoolAddress, error)
	// Bind records the owning order on a previously claimed address.
	Bind(ctx context.Context, addressID, orderID string) error
	// Release compensates a claim whose order creation failed.
	Release(ctx context.Context, addressID string) error
	CreateAddress(ctx context.Context, address *PoolAddress) error
	CreateAddresses(ctx context.Context, addresses []*PoolAddress) error
	ListAddresses(ctx context.Context) ([]*PoolAddress, error)
	DeleteAddress(ctx context.Context, addressID string) error
}

type RateRepository interface {
	// Resolve returns the most recently updated rate row for the exact triple,
	// or ErrRateMissing.
	Resolve(ctx context.Context, asset, network, fiat string) (*Rate, error)
	ListRates(ctx context.Context) ([]*Rate, error)
	CreateRate(ctx context.Context, rate *Rate) error
	UpdateRate(ctx context.Context, rate *Rate) error
	DeleteRate(ctx context.Context, rateID string) error
}

type SettingsRepository interface {
	LoadSettings(ctx context.Context) (*Settings, error)
	SaveSettings(ctx context.Context, settings *Settings) error
}
