package models

import "time"

type SettingModel struct {
	Key       string `gorm:"primaryKey"`
	Value     string `gorm:"type:jsonb"`
	UpdatedAt time.Time
}
