package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	orderdto "github.com/LavaJover/shvark-exchange-service/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() *orderdto.CreateOrderInput {
	return &orderdto.CreateOrderInput{
		AssetSymbol:  "USDT",
		Network:      "TRC20",
		AmountCrypto: 100,
		FiatCurrency: "RUB",
		PayoutMethod: "card",
		ClientIP:     "203.0.113.7",
	}
}

func TestCreateOrder_FixedMode(t *testing.T) {
	f := newFixture(fixedSettings(), newFakeAddressRepo("TRC20"))

	out, err := f.uc.CreateOrder(context.Background(), validInput())
	require.NoError(t, err)
	require.Len(t, out.PublicID, 8)
	require.Len(t, out.Token, 32)

	order, err := f.orders.GetOrderByPublicID(context.Background(), out.PublicID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPendingDeposit, order.Status)
	assert.Equal(t, "TFixedAddr001", order.DepositAddress)
	assert.Equal(t, domain.DepositSourceFixed, order.DepositSource)
	assert.Equal(t, out.Token, order.TokenSecret)
	assert.Equal(t, "203.0.113.7", order.IPAddress)
	assert.Equal(t, int32(1), order.ConfirmationsRequired)

	assert.Equal(t, 90.0, order.RateSnapshot.BuyRate)
	assert.Equal(t, 0.01, order.RateSnapshot.FeePct)
	assert.Equal(t, 50.0, order.RateSnapshot.FeeFlat)

	events := f.publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, out.PublicID, events[0].PublicID)
	assert.Equal(t, string(domain.StatusPendingDeposit), events[0].Status)
}

func TestCreateOrder_Validation(t *testing.T) {
	f := newFixture(fixedSettings(), newFakeAddressRepo("TRC20"))

	cases := []func(*orderdto.CreateOrderInput){
		func(in *orderdto.CreateOrderInput) { in.AssetSymbol = "" },
		func(in *orderdto.CreateOrderInput) { in.Network = "" },
		func(in *orderdto.CreateOrderInput) { in.FiatCurrency = "" },
		func(in *orderdto.CreateOrderInput) { in.PayoutMethod = "" },
		func(in *orderdto.CreateOrderInput) { in.AmountCrypto = 0 },
		func(in *orderdto.CreateOrderInput) { in.AmountCrypto = -5 },
	}
	for _, mutate := range cases {
		input := validInput()
		mutate(input)
		_, err := f.uc.CreateOrder(context.Background(), input)
		assert.ErrorIs(t, err, domain.ErrValidation)
	}
}

func TestCreateOrder_RateMissing(t *testing.T) {
	f := newFixture(fixedSettings(), newFakeAddressRepo("TRC20"))

	input := validInput()
	input.Network = "ERC20"
	f.settings.settings.FixedAddresses["ERC20"] = "0xFixed"

	_, err := f.uc.CreateOrder(context.Background(), input)
	assert.ErrorIs(t, err, domain.ErrRateMissing)
}

func TestCreateOrder_PoolMode(t *testing.T) {
	addresses := newFakeAddressRepo("TRC20", "TPool001")
	f := newFixture(poolSettings(false), addresses)

	out, err := f.uc.CreateOrder(context.Background(), validInput())
	require.NoError(t, err)

	order, err := f.orders.GetOrderByPublicID(context.Background(), out.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "TPool001", order.DepositAddress)
	assert.Equal(t, domain.DepositSourcePool, order.DepositSource)

	claimed := addresses.byID("TPool001-id")
	require.NotNil(t, claimed)
	assert.Equal(t, domain.AddressAssigned, claimed.Status)
	assert.Equal(t, order.ID, claimed.AssignedOrderID)
}

func TestCreateOrder_PoolExhausted(t *testing.T) {
	f := newFixture(poolSettings(false), newFakeAddressRepo("TRC20"))

	_, err := f.uc.CreateOrder(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrAddressUnavailable)
}

func TestCreateOrder_PoolExhaustedFallsBackToFixed(t *testing.T) {
	f := newFixture(poolSettings(true), newFakeAddressRepo("TRC20"))

	out, err := f.uc.CreateOrder(context.Background(), validInput())
	require.NoError(t, err)

	order, err := f.orders.GetOrderByPublicID(context.Background(), out.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "TFixedAddr001", order.DepositAddress)
	assert.Equal(t, domain.DepositSourceFixed, order.DepositSource)
}

func TestCreateOrder_FixedAddressMissing(t *testing.T) {
	settings := fixedSettings()
	settings.FixedAddresses = map[string]string{}
	f := newFixture(settings, newFakeAddressRepo("TRC20"))

	_, err := f.uc.CreateOrder(context.Background(), validInput())
	assert.ErrorIs(t, err, domain.ErrAddressUnavailable)
}

func TestCreateOrder_ConcurrentClaimsAreDistinct(t *testing.T) {
	const poolSize = 8
	addressNames := make([]string, poolSize)
	for i := range addressNames {
		addressNames[i] = "TPool" + string(rune('A'+i))
	}
	addresses := newFakeAddressRepo("TRC20", addressNames...)
	f := newFixture(poolSettings(false), addresses)

	var wg sync.WaitGroup
	results := make([]*orderdto.CreateOrderOutput, poolSize+1)
	errs := make([]error, poolSize+1)
	for i := 0; i < poolSize+1; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = f.uc.CreateOrder(context.Background(), validInput())
		}(i)
	}
	wg.Wait()

	seen := make(map[string]bool)
	exhausted := 0
	for i := range results {
		if errs[i] != nil {
			require.ErrorIs(t, errs[i], domain.ErrAddressUnavailable)
			exhausted++
			continue
		}
		order, err := f.orders.GetOrderByPublicID(context.Background(), results[i].PublicID)
		require.NoError(t, err)
		assert.False(t, seen[order.DepositAddress], "address %s assigned twice", order.DepositAddress)
		seen[order.DepositAddress] = true
	}
	assert.Equal(t, 1, exhausted)
	assert.Len(t, seen, poolSize)
}

func TestCreateOrder_StorageFailureReleasesClaim(t *testing.T) {
	addresses := newFakeAddressRepo("TRC20", "TPool001")
	f := newFixture(poolSettings(false), addresses)
	f.orders.createErr = errors.New("db down")

	_, err := f.uc.CreateOrder(context.Background(), validInput())
	require.Error(t, err)

	released := addresses.byID("TPool001-id")
	require.NotNil(t, released)
	assert.Equal(t, domain.AddressUnused, released.Status)
}

func TestCreateOrder_BindFailureUndoesCreation(t *testing.T) {
	addresses := newFakeAddressRepo("TRC20", "TPool001")
	f := newFixture(poolSettings(false), addresses)
	addresses.bindErr = errors.New("db down")

	_, err := f.uc.CreateOrder(context.Background(), validInput())
	require.Error(t, err)

	orders, listErr := f.orders.ListOrders(context.Background(), domain.OrderFilters{})
	require.NoError(t, listErr)
	assert.Empty(t, orders)

	released := addresses.byID("TPool001-id")
	require.NotNil(t, released)
	assert.Equal(t, domain.AddressUnused, released.Status)
}

func TestCreateOrder_SnapshotSurvivesRateChange(t *testing.T) {
	f := newFixture(fixedSettings(), newFakeAddressRepo("TRC20"))

	out, err := f.uc.CreateOrder(context.Background(), validInput())
	require.NoError(t, err)

	changed := usdtRate()
	changed.BuyRate = 120
	changed.FeeFlat = 0
	f.rates.set(changed)

	order, err := f.orders.GetOrderByPublicID(context.Background(), out.PublicID)
	require.NoError(t, err)
	assert.Equal(t, 90.0, order.RateSnapshot.BuyRate)
	assert.Equal(t, 50.0, order.RateSnapshot.FeeFlat)
}
