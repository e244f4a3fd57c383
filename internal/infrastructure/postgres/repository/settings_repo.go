package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	settingDepositMode       = "deposit_mode"
	settingFallbackToFixed   = "fallback_to_fixed"
	settingFixedAddresses    = "fixed_addresses"
	settingExplorerTemplates = "explorer_templates"
)

type DefaultSettingsRepository struct {
	DB *gorm.DB
}

func NewDefaultSettingsRepository(db *gorm.DB) *DefaultSettingsRepository {
	return &DefaultSettingsRepository{DB: db}
}

// LoadSettings reads all setting rows and fills the typed struct, falling back
// to defaults for missing or unparseable keys.
func (r *DefaultSettingsRepository) LoadSettings(ctx context.Context) (*domain.Settings, error) {
	var rows []models.SettingModel
	if err := r.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	settings := domain.DefaultSettings()
	for _, row := range rows {
		switch row.Key {
		case settingDepositMode:
			var mode string
			if json.Unmarshal([]byte(row.Value), &mode) == nil && domain.DepositMode(mode) == domain.DepositModePool {
				settings.DepositMode = domain.DepositModePool
			}
		case settingFallbackToFixed:
			var fallback bool
			if json.Unmarshal([]byte(row.Value), &fallback) == nil {
				settings.FallbackToFixed = fallback
			}
		case settingFixedAddresses:
			var addresses map[string]string
			if json.Unmarshal([]byte(row.Value), &addresses) == nil && addresses != nil {
				settings.FixedAddresses = addresses
			}
		case settingExplorerTemplates:
			var templates map[string]string
			if json.Unmarshal([]byte(row.Value), &templates) == nil && templates != nil {
				settings.ExplorerTemplates = templates
			}
		}
	}
	return settings, nil
}

func (r *DefaultSettingsRepository) SaveSettings(ctx context.Context, settings *domain.Settings) error {
	rows := []models.SettingModel{
		{Key: settingDepositMode, Value: mustJSON(string(settings.DepositMode))},
		{Key: settingFallbackToFixed, Value: mustJSON(settings.FallbackToFixed)},
		{Key: settingFixedAddresses, Value: mustJSON(settings.FixedAddresses)},
		{Key: settingExplorerTemplates, Value: mustJSON(settings.ExplorerTemplates)},
	}
	now := time.Now()
	for i := range rows {
		rows[i].UpdatedAt = now
	}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rows).Error
}

func mustJSON(v interface{}) string {
	data, _ := json.Marshal(v)
	return string(data)
}
