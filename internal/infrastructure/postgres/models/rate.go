package models

import "time"

type RateModel struct {
	ID           string `gorm:"primaryKey;type:uuid"`
	AssetSymbol  string `gorm:"index:idx_rate_key"`
	Network      string `gorm:"index:idx_rate_key"`
	FiatCurrency string `gorm:"index:idx_rate_key"`
	BuyRate      float64
	FeePct       float64
	FeeFlat      float64
	UpdatedAt    time.Time `gorm:"index:idx_rate_updated_at"`
}
