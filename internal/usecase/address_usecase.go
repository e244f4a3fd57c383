package usecase

import (
	"context"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/google/uuid"
)

const minAddressLength = 5

type AddressUsecase interface {
	ListAddresses(ctx context.Context) ([]*domain.PoolAddress, error)
	AddAddress(ctx context.Context, network, address string) (string, error)
	AddAddresses(ctx context.Context, network string, addresses []string) error
	DeleteAddress(ctx context.Context, addressID string) error
}

type DefaultAddressUsecase struct {
	AddressRepo domain.AddressRepository
}

func NewDefaultAddressUsecase(addressRepo domain.AddressRepository) *DefaultAddressUsecase {
	return &DefaultAddressUsecase{AddressRepo: addressRepo}
}

func (uc *DefaultAddressUsecase) ListAddresses(ctx context.Context) ([]*domain.PoolAddress, error) {
	return uc.AddressRepo.ListAddresses(ctx)
}

func (uc *DefaultAddressUsecase) AddAddress(ctx context.Context, network, address string) (string, error) {
	if network == "" || len(address) < minAddressLength {
		return "", domain.ErrValidation
	}
	poolAddress := &domain.PoolAddress{
		ID:      uuid.New().String(),
		Network: network,
		Address: address,
		Status:  domain.AddressUnused,
	}
	if err := uc.AddressRepo.CreateAddress(ctx, poolAddress); err != nil {
		return "", err
	}
	return poolAddress.ID, nil
}

func (uc *DefaultAddressUsecase) AddAddresses(ctx context.Context, network string, addresses []string) error {
	if network == "" || len(addresses) == 0 {
		return domain.ErrValidation
	}
	poolAddresses := make([]*domain.PoolAddress, 0, len(addresses))
	for _, address := range addresses {
		if len(address) < minAddressLength {
			return domain.ErrValidation
		}
		poolAddresses = append(poolAddresses, &domain.PoolAddress{
			ID:      uuid.New().String(),
			Network: network,
			Address: address,
			Status:  domain.AddressUnused,
		})
	}
	return uc.AddressRepo.CreateAddresses(ctx, poolAddresses)
}

func (uc *DefaultAddressUsecase) DeleteAddress(ctx context.Context, addressID string) error {
	if addressID == "" {
		return domain.ErrValidation
	}
	return uc.AddressRepo.DeleteAddress(ctx, addressID)
}
