package usecase

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/google/uuid"
)

type RateUsecase interface {
	Resolve(ctx context.Context, asset, network, fiat string) (*domain.Rate, error)
	Estimate(ctx context.Context, asset, network, fiat string, amountCrypto float64) (*domain.Quote, error)
	ListRates(ctx context.Context) ([]*domain.Rate, error)
	CreateRate(ctx context.Context, rate *domain.Rate) (string, error)
	UpdateRate(ctx context.Context, rate *domain.Rate) error
	DeleteRate(ctx context.Context, rateID string) error
}

type DefaultRateUsecase struct {
	RateRepo domain.RateRepository
}

func NewDefaultRateUsecase(rateRepo domain.RateRepository) *DefaultRateUsecase {
	return &DefaultRateUsecase{RateRepo: rateRepo}
}

func (uc *DefaultRateUsecase) Resolve(ctx context.Context, asset, network, fiat string) (*domain.Rate, error) {
	return uc.RateRepo.Resolve(ctx, asset, network, fiat)
}

// Estimate is advisory only; the numbers that bind the order are the rate
// snapshot stored at creation.
func (uc *DefaultRateUsecase) Estimate(ctx context.Context, asset, network, fiat string, amountCrypto float64) (*domain.Quote, error) {
	if amountCrypto <= 0 {
		return nil, domain.ErrValidation
	}
	rate, err := uc.RateRepo.Resolve(ctx, asset, network, fiat)
	if err != nil {
		return nil, err
	}
	quote := rate.Quote(amountCrypto)
	return &quote, nil
}

func (uc *DefaultRateUsecase) ListRates(ctx context.Context) ([]*domain.Rate, error) {
	return uc.RateRepo.ListRates(ctx)
}

func (uc *DefaultRateUsecase) CreateRate(ctx context.Context, rate *domain.Rate) (string, error) {
	if rate.AssetSymbol == "" || rate.Network == "" || rate.FiatCurrency == "" || rate.BuyRate <= 0 {
		return "", domain.ErrValidation
	}
	if rate.FeePct < 0 || rate.FeeFlat < 0 {
		return "", domain.ErrValidation
	}
	rate.ID = uuid.New().String()
	rate.UpdatedAt = time.Now()
	if err := uc.RateRepo.CreateRate(ctx, rate); err != nil {
		return "", err
	}
	return rate.ID, nil
}

func (uc *DefaultRateUsecase) UpdateRate(ctx context.Context, rate *domain.Rate) error {
	if rate.ID == "" || rate.AssetSymbol == "" || rate.Network == "" || rate.FiatCurrency == "" || rate.BuyRate <= 0 {
		return domain.ErrValidation
	}
	if rate.FeePct < 0 || rate.FeeFlat < 0 {
		return domain.ErrValidation
	}
	return uc.RateRepo.UpdateRate(ctx, rate)
}

func (uc *DefaultRateUsecase) DeleteRate(ctx context.Context, rateID string) error {
	if rateID == "" {
		return domain.ErrValidation
	}
	return uc.RateRepo.DeleteRate(ctx, rateID)
}
