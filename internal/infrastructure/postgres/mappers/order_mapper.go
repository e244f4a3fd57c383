package mappers

import (
	"encoding/json"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	"github.com/LavaJover/shvark-exchange-service/internal/infrastructure/postgres/models"
)

type payoutDetailsJSON struct {
	Country string            `json:"country"`
	Details map[string]string `json:"details"`
}

func ToDomainOrder(model *models.OrderModel) *domain.Order {
	var payout payoutDetailsJSON
	if model.PayoutDetailsJSON != "" {
		json.Unmarshal([]byte(model.PayoutDetailsJSON), &payout)
	}
	if payout.Details == nil {
		payout.Details = map[string]string{}
	}

	poolAddressID := ""
	if model.DepositPoolAddressID != nil {
		poolAddressID = *model.DepositPoolAddressID
	}

	return &domain.Order{
		ID:          model.ID,
		PublicID:    model.PublicID,
		TokenSecret: model.TokenSecret,
		AssetSymbol: model.AssetSymbol,
		Network:     model.Network,
		AmountCrypto: model.AmountCrypto,
		FiatCurrency: model.FiatCurrency,
		RateSnapshot: domain.RateSnapshot{
			BuyRate: model.BuyRate,
			FeePct:  model.FeePct,
			FeeFlat: model.FeeFlat,
		},
		DepositAddress:       model.DepositAddress,
		DepositSource:        model.DepositSource,
		DepositPoolAddressID: poolAddressID,
		PayoutMethod:         model.PayoutMethod,
		PayoutCountry:        payout.Country,
		PayoutDetails:        payout.Details,
		Txid:                 model.Txid,
		Status:               model.Status,
		ConfirmationsRequired: model.ConfirmationsRequired,
		ConfirmationsCurrent:  model.ConfirmationsCurrent,
		PayoutReference:       model.PayoutReference,
		AdminNote:             model.AdminNote,
		IPAddress:             model.IPAddress,
		CreatedAt:             model.CreatedAt,
		UpdatedAt:             model.UpdatedAt,
	}
}

func ToGORMOrder(order *domain.Order) *models.OrderModel {
	payout, _ := json.Marshal(payoutDetailsJSON{
		Country: order.PayoutCountry,
		Details: order.PayoutDetails,
	})

	var poolAddressID *string
	if order.DepositPoolAddressID != "" {
		id := order.DepositPoolAddressID
		poolAddressID = &id
	}

	return &models.OrderModel{
		ID:          order.ID,
		PublicID:    order.PublicID,
		TokenSecret: order.TokenSecret,
		AssetSymbol: order.AssetSymbol,
		Network:     order.Network,
		AmountCrypto: order.AmountCrypto,
		FiatCurrency: order.FiatCurrency,
		BuyRate:      order.RateSnapshot.BuyRate,
		FeePct:       order.RateSnapshot.FeePct,
		FeeFlat:      order.RateSnapshot.FeeFlat,
		DepositAddress:       order.DepositAddress,
		DepositSource:        order.DepositSource,
		DepositPoolAddressID: poolAddressID,
		PayoutMethod:         order.PayoutMethod,
		PayoutCountry:        order.PayoutCountry,
		PayoutDetailsJSON:    string(payout),
		Txid:                 order.Txid,
		Status:               order.Status,
		ConfirmationsRequired: order.ConfirmationsRequired,
		ConfirmationsCurrent:  order.ConfirmationsCurrent,
		PayoutReference:       order.PayoutReference,
		AdminNote:             order.AdminNote,
		IPAddress:             order.IPAddress,
		CreatedAt:             order.CreatedAt,
		UpdatedAt:             order.UpdatedAt,
	}
}

// MarshalPayoutDetails is shared with the payout update path so the stored
// shape always matches what ToDomainOrder expects.
func MarshalPayoutDetails(country string, details map[string]string) string {
	if details == nil {
		details = map[string]string{}
	}
	payout, _ := json.Marshal(payoutDetailsJSON{Country: country, Details: details})
	return string(payout)
}
