package models

import (
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

type AddressModel struct {
	ID              string `gorm:"primaryKey;type:uuid"`
	Network         string `gorm:"index:idx_network_status;uniqueIndex:idx_network_address"`
	Address         string `gorm:"uniqueIndex:idx_network_address"`
	Status          domain.AddressStatus `gorm:"index:idx_network_status"`
	AssignedOrderID *string `gorm:"type:uuid"`
	CreatedAt       time.Time `gorm:"index:idx_address_created_at"`
}
