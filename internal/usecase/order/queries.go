package usecase

import (
	"context"
	"fmt"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase/mask"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase/token"
	orderdto "github.com/LavaJover/shvark-exchange-service/internal/usecase/dto/order"
)

// authorize looks up the order and verifies the capability token. Any
// failure is reported as not-found so existence of a public id never leaks.
func (uc *DefaultOrderUsecase) authorize(ctx context.Context, publicID, suppliedToken string) (*domain.Order, error) {
	order, err := uc.OrderRepo.GetOrderByPublicID(ctx, publicID)
	if err != nil {
		return nil, err
	}
	if !token.Verify(order.TokenSecret, suppliedToken) {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

func (uc *DefaultOrderUsecase) GetOrderView(ctx context.Context, publicID, suppliedToken string) (*orderdto.OrderView, error) {
	order, err := uc.authorize(ctx, publicID, suppliedToken)
	if err != nil {
		return nil, err
	}

	settings, err := uc.SettingsRepo.LoadSettings(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	return &orderdto.OrderView{
		PublicID:      order.PublicID,
		AssetSymbol:   order.AssetSymbol,
		Network:       order.Network,
		AmountCrypto:  order.AmountCrypto,
		FiatCurrency:  order.FiatCurrency,
		PayoutMethod:  order.PayoutMethod,
		PayoutCountry: order.PayoutCountry,
		PayoutDetails: mask.PayoutDetails(order.PayoutDetails),
		DepositAddress: order.DepositAddress,
		Status:         string(order.Status),
		ConfirmationsRequired: order.ConfirmationsRequired,
		ConfirmationsCurrent:  order.ConfirmationsCurrent,
		Txid:                  order.Txid,
		ExplorerURL:           settings.ExplorerURL(order.Network, order.Txid),
		CreatedAt:             order.CreatedAt,
	}, nil
}

func (uc *DefaultOrderUsecase) ListOrders(ctx context.Context, filters domain.OrderFilters) ([]*domain.Order, error) {
	return uc.OrderRepo.ListOrders(ctx, filters)
}

func (uc *DefaultOrderUsecase) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	return uc.OrderRepo.GetOrderByID(ctx, orderID)
}
