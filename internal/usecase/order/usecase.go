package usecase

import (
	"context"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/metrics"
	"github.com/LavaJover/shvark-exchange-service/internal/usecase/token"
	orderdto "github.com/LavaJover/shvark-exchange-service/internal/usecase/dto/order"
)

type OrderUsecase interface {
	CreateOrder(ctx context.Context, input *orderdto.CreateOrderInput) (*orderdto.CreateOrderOutput, error)
	GetOrderView(ctx context.Context, publicID, suppliedToken string) (*orderdto.OrderView, error)
	SubmitTxid(ctx context.Context, publicID, suppliedToken, txid string) error
	UpdatePayoutDetails(ctx context.Context, publicID, suppliedToken string, input *orderdto.UpdatePayoutInput) error

	// Operator-side operations; callers must be authenticated separately.
	ListOrders(ctx context.Context, filters domain.OrderFilters) ([]*domain.Order, error)
	GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
	ApplyOperatorPatch(ctx context.Context, orderID string, patch domain.OperatorPatch) error
}

type DefaultOrderUsecase struct {
	OrderRepo    domain.OrderRepository
	AddressRepo  domain.AddressRepository
	RateRepo     domain.RateRepository
	SettingsRepo domain.SettingsRepository
	Publisher    domain.OrderEventPublisher
	Metrics      *metrics.OrderMetrics
	Tokens       *token.Authority

	ConfirmationsRequired int32
}

func NewDefaultOrderUsecase(
	orderRepo domain.OrderRepository,
	addressRepo domain.AddressRepository,
	rateRepo domain.RateRepository,
	settingsRepo domain.SettingsRepository,
	eventPublisher domain.OrderEventPublisher,
	orderMetrics *metrics.OrderMetrics,
	tokens *token.Authority,
	confirmationsRequired int32) *DefaultOrderUsecase {

	if confirmationsRequired <= 0 {
		confirmationsRequired = 1
	}

	return &DefaultOrderUsecase{
		OrderRepo:    orderRepo,
		AddressRepo:  addressRepo,
		RateRepo:     rateRepo,
		SettingsRepo: settingsRepo,
		Publisher:    eventPublisher,
		Metrics:      orderMetrics,
		Tokens:       tokens,
		ConfirmationsRequired: confirmationsRequired,
	}
}
