package usecase

import (
	"context"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

type SettingsUsecase interface {
	GetSettings(ctx context.Context) (*domain.Settings, error)
	UpdateSettings(ctx context.Context, settings *domain.Settings) error
}

type DefaultSettingsUsecase struct {
	SettingsRepo domain.SettingsRepository
}

func NewDefaultSettingsUsecase(settingsRepo domain.SettingsRepository) *DefaultSettingsUsecase {
	return &DefaultSettingsUsecase{SettingsRepo: settingsRepo}
}

func (uc *DefaultSettingsUsecase) GetSettings(ctx context.Context) (*domain.Settings, error) {
	return uc.SettingsRepo.LoadSettings(ctx)
}

func (uc *DefaultSettingsUsecase) UpdateSettings(ctx context.Context, settings *domain.Settings) error {
	if settings.DepositMode != domain.DepositModeFixed && settings.DepositMode != domain.DepositModePool {
		return domain.ErrValidation
	}
	if settings.FixedAddresses == nil {
		settings.FixedAddresses = map[string]string{}
	}
	if settings.ExplorerTemplates == nil {
		settings.ExplorerTemplates = map[string]string{}
	}
	return uc.SettingsRepo.SaveSettings(ctx, settings)
}
