package mappers

import (
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
)

func ToDomainRate(model *models.RateModel) *domain.Rate {
	return &domain.Rate{
		ID:           model.ID,
		AssetSymbol:  model.AssetSymbol,
		Network:      model.Network,
		FiatCurrency: model.FiatCurrency,
		BuyRate:      model.BuyRate,
		FeePct:       model.FeePct,
		FeeFlat:      model.FeeFlat,
		UpdatedAt:    model.UpdatedAt,
	}
}

func ToGORMRate(rate *domain.Rate) *models.RateModel {
	return &models.RateModel{
		ID:           rate.ID,
		AssetSymbol:  rate.AssetSymbol,
		Network:      rate.Network,
		FiatCurrency: rate.FiatCurrency,
		BuyRate:      rate.BuyRate,
		FeePct:       rate.FeePct,
		FeeFlat:      rate.FeeFlat,
		UpdatedAt:    rate.UpdatedAt,
	}
}
