package postgres

import (
	"log"

	"github.com/LavaJover/shvark-exchange-service/internal/config"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func MustInitDB(cfg *config.ExchangeConfig) *gorm.DB {
	dsn := cfg.ExchangeDB.Dsn
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to init db: %v\n", err.Error())
	}

	db.AutoMigrate(&models.RateModel{}, &models.AddressModel{}, &models.OrderModel{}, &models.SettingModel{})

	return db
}
