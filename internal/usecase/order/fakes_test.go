package usecase

import (
	"context"
	"sync"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase/token"
)

type fakeOrderRepo struct {
	mu       sync.Mutex
	orders   map[string]*domain.Order
	byPublic map[string]string

	createErr error
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{
		orders:   make(map[string]*domain.Order),
		byPublic: make(map[string]string),
	}
}

func (r *fakeOrderRepo) CreateOrder(ctx context.Context, order *domain.Order) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	stored := *order
	r.orders[order.ID] = &stored
	r.byPublic[order.PublicID] = order.ID
	return nil
}

func (r *fakeOrderRepo) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	copied := *order
	return &copied, nil
}

func (r *fakeOrderRepo) GetOrderByPublicID(ctx context.Context, publicID string) (*domain.Order, error) {
	r.mu.Lock()
	id, ok := r.byPublic[publicID]
	r.mu.Unlock()
	if !ok {
		return nil, domain.ErrOrderNotFound
	}
	return r.GetOrderByID(ctx, id)
}

func (r *fakeOrderRepo) UpdateTxid(ctx context.Context, orderID, txid string, newStatus domain.OrderStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Txid = txid
	order.Status = newStatus
	return nil
}

func (r *fakeOrderRepo) UpdatePayout(ctx context.Context, orderID, payoutMethod, country string, details map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.PayoutMethod = payoutMethod
	order.PayoutCountry = country
	order.PayoutDetails = details
	return nil
}

func (r *fakeOrderRepo) UpdateSettlement(ctx context.Context, orderID string, patch domain.OperatorPatch) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	order.Status = patch.Status
	order.ConfirmationsCurrent = patch.ConfirmationsCurrent
	order.PayoutReference = patch.PayoutReference
	order.AdminNote = patch.AdminNote
	return nil
}

func (r *fakeOrderRepo) ListOrders(ctx context.Context, filters domain.OrderFilters) ([]*domain.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	orders := make([]*domain.Order, 0, len(r.orders))
	for _, order := range r.orders {
		copied := *order
		orders = append(orders, &copied)
	}
	return orders, nil
}

func (r *fakeOrderRepo) DeleteOrder(ctx context.Context, orderID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	order, ok := r.orders[orderID]
	if !ok {
		return domain.ErrOrderNotFound
	}
	delete(r.byPublic, order.PublicID)
	delete(r.orders, orderID)
	return nil
}

type fakeAddressRepo struct {
	mu        sync.Mutex
	addresses []*domain.PoolAddress

	bindErr error
}

func newFakeAddressRepo(network string, addresses ...string) *fakeAddressRepo {
	repo := &fakeAddressRepo{}
	for _, address := range addresses {
		repo.addresses = append(repo.addresses, &domain.PoolAddress{
			ID:      address + "-id",
			Network: network,
			Address: address,
			Status:  domain.AddressUnused,
		})
	}
	return repo
}

func (r *fakeAddressRepo) ClaimUnused(ctx context.Context, network string) (*domain.PoolAddress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, address := range r.addresses {
		if address.Network == network && address.Status == domain.AddressUnused {
			address.Status = domain.AddressAssigned
			copied := *address
			return &copied, nil
		}
	}
	return nil, nil
}

func (r *fakeAddressRepo) Bind(ctx context.Context, addressID, orderID string) error {
	if r.bindErr != nil {
		return r.bindErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, address := range r.addresses {
		if address.ID == addressID {
			address.AssignedOrderID = orderID
			return nil
		}
	}
	return domain.ErrAddressUnavailable
}

func (r *fakeAddressRepo) Release(ctx context.Context, addressID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, address := range r.addresses {
		if address.ID == addressID {
			address.Status = domain.AddressUnused
			address.AssignedOrderID = ""
			return nil
		}
	}
	return nil
}

func (r *fakeAddressRepo) CreateAddress(ctx context.Context, address *domain.PoolAddress) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *address
	r.addresses = append(r.addresses, &copied)
	return nil
}

func (r *fakeAddressRepo) CreateAddresses(ctx context.Context, addresses []*domain.PoolAddress) error {
	for _, address := range addresses {
		if err := r.CreateAddress(ctx, address); err != nil {
			return err
		}
	}
	return nil
}

func (r *fakeAddressRepo) ListAddresses(ctx context.Context) ([]*domain.PoolAddress, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	addresses := make([]*domain.PoolAddress, 0, len(r.addresses))
	for _, address := range r.addresses {
		copied := *address
		addresses = append(addresses, &copied)
	}
	return addresses, nil
}

func (r *fakeAddressRepo) DeleteAddress(ctx context.Context, addressID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, address := range r.addresses {
		if address.ID == addressID {
			r.addresses = append(r.addresses[:i], r.addresses[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *fakeAddressRepo) byID(addressID string) *domain.PoolAddress {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, address := range r.addresses {
		if address.ID == addressID {
			copied := *address
			return &copied
		}
	}
	return nil
}

type fakeRateRepo struct {
	mu    sync.Mutex
	rates map[string]*domain.Rate
}

func newFakeRateRepo(rates ...*domain.Rate) *fakeRateRepo {
	repo := &fakeRateRepo{rates: make(map[string]*domain.Rate)}
	for _, rate := range rates {
		repo.rates[rate.AssetSymbol+"/"+rate.Network+"/"+rate.FiatCurrency] = rate
	}
	return repo
}

func (r *fakeRateRepo) Resolve(ctx context.Context, asset, network, fiat string) (*domain.Rate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rate, ok := r.rates[asset+"/"+network+"/"+fiat]
	if !ok {
		return nil, domain.ErrRateMissing
	}
	copied := *rate
	return &copied, nil
}

func (r *fakeRateRepo) set(rate *domain.Rate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rates[rate.AssetSymbol+"/"+rate.Network+"/"+rate.FiatCurrency] = rate
}

func (r *fakeRateRepo) ListRates(ctx context.Context) ([]*domain.Rate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rates := make([]*domain.Rate, 0, len(r.rates))
	for _, rate := range r.rates {
		copied := *rate
		rates = append(rates, &copied)
	}
	return rates, nil
}

func (r *fakeRateRepo) CreateRate(ctx context.Context, rate *domain.Rate) error {
	r.set(rate)
	return nil
}

func (r *fakeRateRepo) UpdateRate(ctx context.Context, rate *domain.Rate) error {
	r.set(rate)
	return nil
}

func (r *fakeRateRepo) DeleteRate(ctx context.Context, rateID string) error {
	return nil
}

type fakeSettingsRepo struct {
	mu       sync.Mutex
	settings *domain.Settings
}

func newFakeSettingsRepo(settings *domain.Settings) *fakeSettingsRepo {
	return &fakeSettingsRepo{settings: settings}
}

func (r *fakeSettingsRepo) LoadSettings(ctx context.Context) (*domain.Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	copied := *r.settings
	return &copied, nil
}

func (r *fakeSettingsRepo) SaveSettings(ctx context.Context, settings *domain.Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings = settings
	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []domain.OrderEvent
}

func (p *fakePublisher) PublishOrderEvent(ctx context.Context, event domain.OrderEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *fakePublisher) published() []domain.OrderEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	events := make([]domain.OrderEvent, len(p.events))
	copy(events, p.events)
	return events
}

type fixture struct {
	uc        *DefaultOrderUsecase
	orders    *fakeOrderRepo
	addresses *fakeAddressRepo
	rates     *fakeRateRepo
	settings  *fakeSettingsRepo
	publisher *fakePublisher
}

func usdtRate() *domain.Rate {
	return &domain.Rate{
		ID:           "rate-1",
		AssetSymbol:  "USDT",
		Network:      "TRC20",
		FiatCurrency: "RUB",
		BuyRate:      90,
		FeePct:       0.01,
		FeeFlat:      50,
	}
}

func newFixture(settings *domain.Settings, addressRepo *fakeAddressRepo) *fixture {
	tokens, err := token.NewAuthority()
	if err != nil {
		panic(err)
	}
	orders := newFakeOrderRepo()
	rates := newFakeRateRepo(usdtRate())
	settingsRepo := newFakeSettingsRepo(settings)
	pub := &fakePublisher{}

	return &fixture{
		uc: NewDefaultOrderUsecase(
			orders, addressRepo, rates, settingsRepo, pub, nil, tokens, 1,
		),
		orders:    orders,
		addresses: addressRepo,
		rates:     rates,
		settings:  settingsRepo,
		publisher: pub,
	}
}

func fixedSettings() *domain.Settings {
	return &domain.Settings{
		DepositMode:     domain.DepositModeFixed,
		FallbackToFixed: true,
		FixedAddresses:  map[string]string{"TRC20": "TFixedAddr001"},
		ExplorerTemplates: map[string]string{
			"TRC20": "https://tronscan.org/#/transaction/{txid}",
		},
	}
}

func poolSettings(fallback bool) *domain.Settings {
	settings := fixedSettings()
	settings.DepositMode = domain.DepositModePool
	settings.FallbackToFixed = fallback
	return settings
}
