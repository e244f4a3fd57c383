package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/mappers"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
)

type DefaultRateRepository struct {
	DB *gorm.DB
}

func NewDefaultRateRepository(db *gorm.DB) *DefaultRateRepository {
	return &DefaultRateRepository{DB: db}
}

// Resolve selects the most recently updated row for the exact triple.
// Historical rows for the same key stay in place.
func (r *DefaultRateRepository) Resolve(ctx context.Context, asset, network, fiat string) (*domain.Rate, error) {
	var rateModel models.RateModel
	err := r.DB.WithContext(ctx).
		Where("asset_symbol = ? AND network = ? AND fiat_currency = ?", asset, network, fiat).
		Order("updated_at DESC").
		First(&rateModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRateMissing
		}
		return nil, fmt.Errorf("failed to resolve rate: %w", err)
	}
	return mappers.ToDomainRate(&rateModel), nil
}

func (r *DefaultRateRepository) ListRates(ctx context.Context) ([]*domain.Rate, error) {
	var rateModels []models.RateModel
	if err := r.DB.WithContext(ctx).Order("updated_at DESC").Find(&rateModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list rates: %w", err)
	}
	rates := make([]*domain.Rate, len(rateModels))
	for i := range rateModels {
		rates[i] = mappers.ToDomainRate(&rateModels[i])
	}
	return rates, nil
}

func (r *DefaultRateRepository) CreateRate(ctx context.Context, rate *domain.Rate) error {
	rateModel := mappers.ToGORMRate(rate)
	if rateModel.UpdatedAt.IsZero() {
		rateModel.UpdatedAt = time.Now()
	}
	return r.DB.WithContext(ctx).Create(rateModel).Error
}

func (r *DefaultRateRepository) UpdateRate(ctx context.Context, rate *domain.Rate) error {
	rateModel := mappers.ToGORMRate(rate)
	rateModel.UpdatedAt = time.Now()
	result := r.DB.WithContext(ctx).Model(&models.RateModel{}).
		Where("id = ?", rateModel.ID).
		Updates(map[string]interface{}{
			"asset_symbol":  rateModel.AssetSymbol,
			"network":       rateModel.Network,
			"fiat_currency": rateModel.FiatCurrency,
			"buy_rate":      rateModel.BuyRate,
			"fee_pct":       rateModel.FeePct,
			"fee_flat":      rateModel.FeeFlat,
			"updated_at":    rateModel.UpdatedAt,
		})
	return result.Error
}

func (r *DefaultRateRepository) DeleteRate(ctx context.Context, rateID string) error {
	return r.DB.WithContext(ctx).Delete(&models.RateModel{ID: rateID}).Error
}
