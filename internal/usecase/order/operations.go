package usecase

import (
	"context"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	orderdto "github.com/LavaJover/shvark-exchange-service/internal/usecase/dto/order"
)

const minTxidLength = 6

// SubmitTxid stores the customer's transaction hash byte-for-byte and forces
// the order into detecting. Resubmission repeats the forced transition even
// when an operator has already advanced the order further; settlement is
// manual and operators re-drive the status when that happens.
func (uc *DefaultOrderUsecase) SubmitTxid(ctx context.Context, publicID, suppliedToken, txid string) error {
	if len(txid) < minTxidLength {
		return domain.ErrValidation
	}

	order, err := uc.authorize(ctx, publicID, suppliedToken)
	if err != nil {
		return err
	}
	if order.Status.Terminal() {
		return domain.ErrOrderLocked
	}

	if err := uc.OrderRepo.UpdateTxid(ctx, order.ID, txid, domain.StatusDetecting); err != nil {
		uc.Metrics.RecordError("submit_txid", "storage")
		return err
	}

	uc.Metrics.RecordStatusTransition(string(domain.StatusDetecting), "customer")
	order.Status = domain.StatusDetecting
	order.Txid = txid
	uc.publishEvent(ctx, order)
	return nil
}

func (uc *DefaultOrderUsecase) UpdatePayoutDetails(ctx context.Context, publicID, suppliedToken string, input *orderdto.UpdatePayoutInput) error {
	if input.PayoutMethod == "" || len(input.Country) < 2 {
		return domain.ErrValidation
	}

	order, err := uc.authorize(ctx, publicID, suppliedToken)
	if err != nil {
		return err
	}
	if order.Status.Terminal() {
		return domain.ErrOrderLocked
	}

	if err := uc.OrderRepo.UpdatePayout(ctx, order.ID, input.PayoutMethod, input.Country, input.Details); err != nil {
		uc.Metrics.RecordError("update_payout", "storage")
		return err
	}
	return nil
}

// ApplyOperatorPatch sets the settlement fields an operator controls. The
// status only has to be a known workflow status; operators may move an order
// to any state, including backwards.
func (uc *DefaultOrderUsecase) ApplyOperatorPatch(ctx context.Context, orderID string, patch domain.OperatorPatch) error {
	if !domain.ValidStatus(patch.Status) {
		return domain.ErrValidation
	}
	if patch.ConfirmationsCurrent < 0 {
		return domain.ErrValidation
	}

	order, err := uc.OrderRepo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	if err := uc.OrderRepo.UpdateSettlement(ctx, orderID, patch); err != nil {
		uc.Metrics.RecordError("operator_patch", "storage")
		return err
	}

	uc.Metrics.RecordStatusTransition(string(patch.Status), "operator")
	order.Status = patch.Status
	uc.publishEvent(ctx, order)
	return nil
}
