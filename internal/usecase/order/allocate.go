package usecase

import (
	"context"
	"time"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
)

type allocation struct {
	Address       string
	Source        domain.DepositSource
	PoolAddressID string
}

// allocateAddress resolves exactly one deposit address for the network per
// the current settings. In pool mode the claim is an atomic unused-to-assigned
// transition inside the address repository; an empty pool falls back to the
// fixed address only when the operator enabled that.
func (uc *DefaultOrderUsecase) allocateAddress(ctx context.Context, network string, settings *domain.Settings) (*allocation, error) {
	start := time.Now()
	defer func() {
		uc.Metrics.RecordAllocationDuration(network, time.Since(start).Seconds())
	}()

	if settings.DepositMode == domain.DepositModePool {
		claimed, err := uc.AddressRepo.ClaimUnused(ctx, network)
		if err != nil {
			uc.Metrics.RecordAllocationFailed(network, "storage")
			return nil, err
		}
		if claimed != nil {
			uc.Metrics.RecordAllocation(network, string(domain.DepositSourcePool))
			return &allocation{
				Address:       claimed.Address,
				Source:        domain.DepositSourcePool,
				PoolAddressID: claimed.ID,
			}, nil
		}
		if !settings.FallbackToFixed {
			uc.Metrics.RecordAllocationFailed(network, "exhausted")
			return nil, domain.ErrAddressUnavailable
		}
	}

	fixed := settings.FixedAddresses[network]
	if fixed == "" {
		uc.Metrics.RecordAllocationFailed(network, "missing")
		return nil, domain.ErrAddressUnavailable
	}

	uc.Metrics.RecordAllocation(network, string(domain.DepositSourceFixed))
	return &allocation{Address: fixed, Source: domain.DepositSourceFixed}, nil
}
