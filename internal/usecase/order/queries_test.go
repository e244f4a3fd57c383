package usecase

import (
	"context"
	"testing"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	orderdto "github.com/LavaJover/shvark-exchange-service/internal/usecase/dto/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrderView_RoundTrip(t *testing.T) {
	f := newFixture(fixedSettings(), newFakeAddressRepo("TRC20"))
	ctx := context.Background()

	out, err := f.uc.CreateOrder(ctx, validInput())
	require.NoError(t, err)

	require.NoError(t, f.uc.UpdatePayoutDetails(ctx, out.PublicID, out.Token, &orderdto.UpdatePayoutInput{
		PayoutMethod: "card",
		Country:      "RU",
		Details:      map[string]string{"card_number": "4111111111111111", "holder": "IVAN"},
	}))
	require.NoError(t, f.uc.SubmitTxid(ctx, out.PublicID, out.Token, "abcdef123456"))

	view, err := f.uc.GetOrderView(ctx, out.PublicID, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.PublicID, view.PublicID)
	assert.Equal(t, "TFixedAddr001", view.DepositAddress)
	assert.Equal(t, string(domain.StatusDetecting), view.Status)
	assert.Equal(t, "abcdef123456", view.Txid)
	assert.Equal(t, "https://tronscan.org/#/transaction/abcdef123456", view.ExplorerURL)

	// Masked, never raw.
	assert.Equal(t, "41****11", view.PayoutDetails["card_number"])
	assert.Equal(t, "****", view.PayoutDetails["holder"])

	stored, err := f.orders.GetOrderByPublicID(ctx, out.PublicID)
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", stored.PayoutDetails["card_number"])
}

func TestGetOrderView_WrongToken(t *testing.T) {
	f := newFixture(fixedSettings(), newFakeAddressRepo("TRC20"))
	ctx := context.Background()

	out, err := f.uc.CreateOrder(ctx, validInput())
	require.NoError(t, err)

	_, err = f.uc.GetOrderView(ctx, out.PublicID, "wrong-token")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
	assert.NotErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.uc.GetOrderView(ctx, out.PublicID, "")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGetOrderView_UnknownPublicID(t *testing.T) {
	f := newFixture(fixedSettings(), newFakeAddressRepo("TRC20"))

	_, err := f.uc.GetOrderView(context.Background(), "nope1234", "whatever")
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestGetOrderView_NoExplorerTemplate(t *testing.T) {
	settings := fixedSettings()
	settings.ExplorerTemplates = map[string]string{}
	f := newFixture(settings, newFakeAddressRepo("TRC20"))
	ctx := context.Background()

	out, err := f.uc.CreateOrder(ctx, validInput())
	require.NoError(t, err)
	require.NoError(t, f.uc.SubmitTxid(ctx, out.PublicID, out.Token, "abcdef123456"))

	view, err := f.uc.GetOrderView(ctx, out.PublicID, out.Token)
	require.NoError(t, err)
	assert.Empty(t, view.ExplorerURL)
}
