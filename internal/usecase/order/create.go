package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	orderdto "github.com/LavaJover/shvark-exchange-service/internal/usecase/dto/order"
	"github.com/google/uuid"
)

func (uc *DefaultOrderUsecase) CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.CreateOrderOutput, error) {
	if input.AssetSymbol == "" || input.Network == "" || input.FiatCurrency == "" ||
		input.PayoutMethod == "" || input.AmountCrypto <= 0 {
		return nil, domain.ErrValidation
	}

	rate, err := uc.RateRepo.Resolve(ctx, input.AssetSymbol, input.Network, input.FiatCurrency)
	if err != nil {
		uc.Metrics.RecordError("create", "rate_missing")
		return nil, err
	}

	settings, err := uc.SettingsRepo.LoadSettings(ctx)
	if err != nil {
		uc.Metrics.RecordError("create", "settings")
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	allocated, err := uc.allocateAddress(ctx, input.Network, settings)
	if err != nil {
		return nil, err
	}

	publicID := uc.Tokens.MintPublicID()
	tokenSecret, err := uc.Tokens.MintSecret()
	if err != nil {
		uc.compensateClaim(ctx, allocated)
		return nil, err
	}

	now := time.Now()
	order := &domain.Order{
		ID:          uuid.New().String(),
		PublicID:    publicID,
		TokenSecret: tokenSecret,
		AssetSymbol: input.AssetSymbol,
		Network:     input.Network,
		AmountCrypto: input.AmountCrypto,
		FiatCurrency: input.FiatCurrency,
		RateSnapshot: domain.RateSnapshot{
			BuyRate: rate.BuyRate,
			FeePct:  rate.FeePct,
			FeeFlat: rate.FeeFlat,
		},
		DepositAddress:       allocated.Address,
		DepositSource:        allocated.Source,
		DepositPoolAddressID: allocated.PoolAddressID,
		PayoutMethod:         input.PayoutMethod,
		PayoutDetails:        map[string]string{},
		Status:               domain.StatusPendingDeposit,
		ConfirmationsRequired: uc.ConfirmationsRequired,
		IPAddress:             input.ClientIP,
		CreatedAt:             now,
		UpdatedAt:             now,
	}

	if err := uc.OrderRepo.CreateOrder(ctx, order); err != nil {
		uc.compensateClaim(ctx, allocated)
		uc.Metrics.RecordError("create", "storage")
		return nil, err
	}

	if allocated.Source == domain.DepositSourcePool {
		if err := uc.AddressRepo.Bind(ctx, allocated.PoolAddressID, order.ID); err != nil {
			// A claimed address with no owning order is an inconsistency we
			// never leave behind: undo the whole creation.
			if delErr := uc.OrderRepo.DeleteOrder(ctx, order.ID); delErr != nil {
				slog.Error("failed to delete order after bind failure", "order_id", order.ID, "error", delErr.Error())
			}
			uc.compensateClaim(ctx, allocated)
			uc.Metrics.RecordError("create", "bind")
			return nil, err
		}
	}

	uc.Metrics.RecordOrderCreated(order.AssetSymbol, order.Network, order.FiatCurrency, order.AmountCrypto)
	uc.publishEvent(ctx, order)

	return &orderdto.CreateOrderOutput{PublicID: publicID, Token: tokenSecret}, nil
}

func (uc *DefaultOrderUsecase) compensateClaim(ctx context.Context, allocated *allocation) {
	if allocated == nil || allocated.Source != domain.DepositSourcePool {
		return
	}
	if err := uc.AddressRepo.Release(ctx, allocated.PoolAddressID); err != nil {
		slog.Error("failed to release claimed address", "address_id", allocated.PoolAddressID, "error", err.Error())
	}
}

func (uc *DefaultOrderUsecase) publishEvent(ctx context.Context, order *domain.Order) {
	if uc.Publisher == nil {
		return
	}
	event := domain.OrderEvent{
		PublicID:     order.PublicID,
		Status:       string(order.Status),
		AssetSymbol:  order.AssetSymbol,
		Network:      order.Network,
		AmountCrypto: order.AmountCrypto,
		FiatCurrency: order.FiatCurrency,
	}
	if err := uc.Publisher.PublishOrderEvent(ctx, event); err != nil {
		slog.Error("failed to publish order event", "public_id", order.PublicID, "error", err.Error())
	}
}
