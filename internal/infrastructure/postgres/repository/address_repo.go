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

// claimAttempts bounds the retry loop when concurrent callers race for the
// same candidate rows.
const claimAttempts = 5

type DefaultAddressRepository struct {
	DB *gorm.DB
}

func NewDefaultAddressRepository(db *gorm.DB) *DefaultAddressRepository {
	return &DefaultAddressRepository{DB: db}
}

// ClaimUnused picks the oldest unused address for the network and marks it
// assigned with a conditional update keyed on the current status. Losing a
// race costs one retry against the next candidate; at most one caller ever
// flips a given row.
func (r *DefaultAddressRepository) ClaimUnused(ctx context.Context, network string) (*domain.PoolAddress, error) {
	for attempt := 0; attempt < claimAttempts; attempt++ {
		var candidate models.AddressModel
		err := r.DB.WithContext(ctx).
			Where("network = ? AND status = ?", network, domain.AddressUnused).
			Order("created_at ASC").
			First(&candidate).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, nil
			}
			return nil, fmt.Errorf("failed to find unused address: %w", err)
		}

		result := r.DB.WithContext(ctx).Model(&models.AddressModel{}).
			Where("id = ? AND status = ?", candidate.ID, domain.AddressUnused).
			Update("status", domain.AddressAssigned)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to claim address: %w", result.Error)
		}
		if result.RowsAffected == 1 {
			candidate.Status = domain.AddressAssigned
			return mappers.ToDomainAddress(&candidate), nil
		}
		// Another caller won this row; try the next one.
	}
	return nil, nil
}

func (r *DefaultAddressRepository) Bind(ctx context.Context, addressID, orderID string) error {
	result := r.DB.WithContext(ctx).Model(&models.AddressModel{}).
		Where("id = ? AND status = ?", addressID, domain.AddressAssigned).
		Update("assigned_order_id", orderID)
	if result.Error != nil {
		return fmt.Errorf("failed to bind address: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("address %s is not claimed", addressID)
	}
	return nil
}

// Release undoes a claim whose order creation failed. It never touches
// addresses that already carry an owning order.
func (r *DefaultAddressRepository) Release(ctx context.Context, addressID string) error {
	return r.DB.WithContext(ctx).Model(&models.AddressModel{}).
		Where("id = ? AND status = ? AND assigned_order_id IS NULL", addressID, domain.AddressAssigned).
		Update("status", domain.AddressUnused).Error
}

func (r *DefaultAddressRepository) CreateAddress(ctx context.Context, address *domain.PoolAddress) error {
	addressModel := mappers.ToGORMAddress(address)
	if addressModel.CreatedAt.IsZero() {
		addressModel.CreatedAt = time.Now()
	}
	return r.DB.WithContext(ctx).Create(addressModel).Error
}

func (r *DefaultAddressRepository) CreateAddresses(ctx context.Context, addresses []*domain.PoolAddress) error {
	if len(addresses) == 0 {
		return nil
	}
	addressModels := make([]*models.AddressModel, len(addresses))
	now := time.Now()
	for i, address := range addresses {
		addressModels[i] = mappers.ToGORMAddress(address)
		if addressModels[i].CreatedAt.IsZero() {
			addressModels[i].CreatedAt = now
		}
	}
	return r.DB.WithContext(ctx).Create(addressModels).Error
}

func (r *DefaultAddressRepository) ListAddresses(ctx context.Context) ([]*domain.PoolAddress, error) {
	var addressModels []models.AddressModel
	if err := r.DB.WithContext(ctx).Order("created_at DESC").Find(&addressModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	addresses := make([]*domain.PoolAddress, len(addressModels))
	for i := range addressModels {
		addresses[i] = mappers.ToDomainAddress(&addressModels[i])
	}
	return addresses, nil
}

func (r *DefaultAddressRepository) DeleteAddress(ctx context.Context, addressID string) error {
	return r.DB.WithContext(ctx).Delete(&models.AddressModel{ID: addressID}).Error
}
