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

type DefaultOrderRepository struct {
	DB *gorm.DB
}

func NewDefaultOrderRepository(db *gorm.DB) *DefaultOrderRepository {
	return &DefaultOrderRepository{DB: db}
}

func (r *DefaultOrderRepository) CreateOrder(ctx context.Context, order *domain.Order) error {
	orderModel := mappers.ToGORMOrder(order)
	if err := r.DB.WithContext(ctx).Create(orderModel).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

func (r *DefaultOrderRepository) GetOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := r.DB.WithContext(ctx).First(&orderModel, "id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

func (r *DefaultOrderRepository) GetOrderByPublicID(ctx context.Context, publicID string) (*domain.Order, error) {
	var orderModel models.OrderModel
	if err := r.DB.WithContext(ctx).First(&orderModel, "public_id = ?", publicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, err
	}
	return mappers.ToDomainOrder(&orderModel), nil
}

func (r *DefaultOrderRepository) UpdateTxid(ctx context.Context, orderID, txid string, newStatus domain.OrderStatus) error {
	result := r.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"txid":       txid,
			"status":     newStatus,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) UpdatePayout(ctx context.Context, orderID, payoutMethod, country string, details map[string]string) error {
	result := r.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"payout_method":       payoutMethod,
			"payout_country":      country,
			"payout_details_json": mappers.MarshalPayoutDetails(country, details),
			"updated_at":          time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) UpdateSettlement(ctx context.Context, orderID string, patch domain.OperatorPatch) error {
	result := r.DB.WithContext(ctx).Model(&models.OrderModel{}).
		Where("id = ?", orderID).
		Updates(map[string]interface{}{
			"status":                patch.Status,
			"confirmations_current": patch.ConfirmationsCurrent,
			"payout_reference":      patch.PayoutReference,
			"admin_note":            patch.AdminNote,
			"updated_at":            time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}

func (r *DefaultOrderRepository) ListOrders(ctx context.Context, filters domain.OrderFilters) ([]*domain.Order, error) {
	query := r.DB.WithContext(ctx).Model(&models.OrderModel{})

	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	}
	if filters.Network != "" {
		query = query.Where("network = ?", filters.Network)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("public_id LIKE ? OR txid LIKE ?", pattern, pattern)
	}

	var orderModels []models.OrderModel
	if err := query.Order("created_at DESC").Find(&orderModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}

	orders := make([]*domain.Order, len(orderModels))
	for i := range orderModels {
		orders[i] = mappers.ToDomainOrder(&orderModels[i])
	}
	return orders, nil
}

func (r *DefaultOrderRepository) DeleteOrder(ctx context.Context, orderID string) error {
	return r.DB.WithContext(ctx).Delete(&models.OrderModel{ID: orderID}).Error
}
