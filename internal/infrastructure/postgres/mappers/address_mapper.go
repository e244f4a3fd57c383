package mappers

import (
	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
)

func ToDomainAddress(model *models.AddressModel) *domain.PoolAddress {
	assignedOrderID := ""
	if model.AssignedOrderID != nil {
		assignedOrderID = *model.AssignedOrderID
	}
	return &domain.PoolAddress{
		ID:              model.ID,
		Network:         model.Network,
		Address:         model.Address,
		Status:          model.Status,
		AssignedOrderID: assignedOrderID,
		CreatedAt:       model.CreatedAt,
	}
}

func ToGORMAddress(address *domain.PoolAddress) *models.AddressModel {
	var assignedOrderID *string
	if address.AssignedOrderID != "" {
		id := address.AssignedOrderID
		assignedOrderID = &id
	}
	return &models.AddressModel{
		ID:              address.ID,
		Network:         address.Network,
		Address:         address.Address,
		Status:          address.Status,
		AssignedOrderID: assignedOrderID,
		CreatedAt:       address.CreatedAt,
	}
}
