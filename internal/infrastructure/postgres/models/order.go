package models

import (
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

type OrderModel struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	PublicID    string `gorm:"uniqueIndex:idx_public_id"`
	TokenSecret string

	AssetSymbol  string
	Network      string `gorm:"index:idx_network"`
	AmountCrypto float64
	FiatCurrency string
	BuyRate      float64
	FeePct       float64
	FeeFlat      float64

	DepositAddress       string
	DepositSource        domain.DepositSource
	DepositPoolAddressID *string `gorm:"type:uuid"`

	PayoutMethod      string
	PayoutCountry     string
	PayoutDetailsJSON string `gorm:"type:jsonb"`

	Txid string `gorm:"index:idx_txid"`

	Status                domain.OrderStatus `gorm:"index:idx_status"`
	ConfirmationsRequired int32
	ConfirmationsCurrent  int32
	PayoutReference       string
	AdminNote             string

	IPAddress string
	CreatedAt time.Time `gorm:"index:idx_created_at"`
	UpdatedAt time.Time
}
