package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	httpdto "github.com/LavaJover/shvark-exchange-service/internal/delivery/http/dto/order"
	rootusecase "github.com/LavaJover/shvark-exchange-service/internal/usecase"
	usecase "github.com/LavaJover/shvark-exchange-service/internal/usecase/order"
	"github.com/go-chi/chi/v5"
)

// AdminHandler serves the operator surface. Operator authentication itself is
// an external collaborator; the router mounts these behind an auth gate.
type AdminHandler struct {
	Orders    usecase.OrderUsecase
	Addresses rootusecase.AddressUsecase
	Rates     rootusecase.RateUsecase
	Settings  rootusecase.SettingsUsecase
}

func NewAdminHandler(
	orders usecase.OrderUsecase,
	addresses rootusecase.AddressUsecase,
	rates rootusecase.RateUsecase,
	settings rootusecase.SettingsUsecase) *AdminHandler {

	return &AdminHandler{
		Orders:    orders,
		Addresses: addresses,
		Rates:     rates,
		Settings:  settings,
	}
}

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	filters := domain.OrderFilters{
		Status:  r.URL.Query().Get("status"),
		Network: r.URL.Query().Get("network"),
		Search:  r.URL.Query().Get("search"),
	}

	orders, err := h.Orders.ListOrders(r.Context(), filters)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list orders.")
		return
	}

	summaries := make([]httpdto.AdminOrderSummary, len(orders))
	for i, order := range orders {
		summaries[i] = httpdto.AdminOrderSummary{
			ID:           order.ID,
			PublicID:     order.PublicID,
			Status:       string(order.Status),
			AssetSymbol:  order.AssetSymbol,
			Network:      order.Network,
			AmountCrypto: order.AmountCrypto,
			FiatCurrency: order.FiatCurrency,
			Txid:         order.Txid,
		}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.GetOrderByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "Order not found.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to read order.")
		return
	}

	settings, err := h.Settings.GetSettings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read order.")
		return
	}

	// Operators see raw payout details; settlement needs them unmasked.
	writeJSON(w, http.StatusOK, httpdto.AdminOrderDetail{
		ID:           order.ID,
		PublicID:     order.PublicID,
		Status:       string(order.Status),
		AssetSymbol:  order.AssetSymbol,
		Network:      order.Network,
		AmountCrypto: order.AmountCrypto,
		FiatCurrency: order.FiatCurrency,
		BuyRate:      order.RateSnapshot.BuyRate,
		FeePct:       order.RateSnapshot.FeePct,
		FeeFlat:      order.RateSnapshot.FeeFlat,
		DepositAddress: order.DepositAddress,
		DepositSource:  string(order.DepositSource),
		PayoutMethod:   order.PayoutMethod,
		PayoutCountry:  order.PayoutCountry,
		PayoutDetails:  order.PayoutDetails,
		Txid:           order.Txid,
		ExplorerURL:    settings.ExplorerURL(order.Network, order.Txid),
		ConfirmationsRequired: order.ConfirmationsRequired,
		ConfirmationsCurrent:  order.ConfirmationsCurrent,
		PayoutReference:       order.PayoutReference,
		AdminNote:             order.AdminNote,
		IPAddress:             order.IPAddress,
		CreatedAt:             order.CreatedAt,
		UpdatedAt:             order.UpdatedAt,
	})
}

func (h *AdminHandler) PatchOrder(w http.ResponseWriter, r *http.Request) {
	var req httpdto.OperatorPatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	patch := domain.OperatorPatch{
		Status:               domain.OrderStatus(req.Status),
		ConfirmationsCurrent: req.ConfirmationsCurrent,
	}
	if req.PayoutReference != nil {
		patch.PayoutReference = *req.PayoutReference
	}
	if req.AdminNote != nil {
		patch.AdminNote = *req.AdminNote
	}

	err := h.Orders.ApplyOperatorPatch(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, "Invalid payload.")
		case errors.Is(err, domain.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "Order not found.")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to update order.")
		}
		return
	}

	writeJSON(w, http.StatusOK, httpdto.SuccessResponse{Success: true})
}

func (h *AdminHandler) ListAddresses(w http.ResponseWriter, r *http.Request) {
	addresses, err := h.Addresses.ListAddresses(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list addresses.")
		return
	}

	responses := make([]httpdto.AddressResponse, len(addresses))
	for i, address := range addresses {
		responses[i] = httpdto.AddressResponse{
			ID:              address.ID,
			Network:         address.Network,
			Address:         address.Address,
			Status:          string(address.Status),
			AssignedOrderID: address.AssignedOrderID,
			CreatedAt:       address.CreatedAt,
		}
	}
	writeJSON(w, http.StatusOK, responses)
}

// AddAddresses accepts either a single address or a bulk upload in one body.
func (h *AdminHandler) AddAddresses(w http.ResponseWriter, r *http.Request) {
	var req httpdto.AddAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	var err error
	if len(req.Addresses) > 0 {
		err = h.Addresses.AddAddresses(r.Context(), req.Network, req.Addresses)
	} else {
		_, err = h.Addresses.AddAddress(r.Context(), req.Network, req.Address)
	}
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid payload.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to add addresses.")
		return
	}

	writeJSON(w, http.StatusOK, httpdto.SuccessResponse{Success: true})
}

func (h *AdminHandler) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	var req httpdto.DeleteByIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.")
		return
	}
	if err := h.Addresses.DeleteAddress(r.Context(), req.ID); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid payload.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete address.")
		return
	}
	writeJSON(w, http.StatusOK, httpdto.SuccessResponse{Success: true})
}

func (h *AdminHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.Rates.ListRates(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list rates.")
		return
	}
	writeJSON(w, http.StatusOK, toRateResponses(rates))
}

func (h *AdminHandler) CreateRate(w http.ResponseWriter, r *http.Request) {
	var req httpdto.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	_, err := h.Rates.CreateRate(r.Context(), &domain.Rate{
		AssetSymbol:  req.AssetSymbol,
		Network:      req.Network,
		FiatCurrency: req.FiatCurrency,
		BuyRate:      req.BuyRate,
		FeePct:       req.FeePct,
		FeeFlat:      req.FeeFlat,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid payload.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to create rate.")
		return
	}
	writeJSON(w, http.StatusOK, httpdto.SuccessResponse{Success: true})
}

func (h *AdminHandler) UpdateRate(w http.ResponseWriter, r *http.Request) {
	var req httpdto.RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	err := h.Rates.UpdateRate(r.Context(), &domain.Rate{
		ID:           req.ID,
		AssetSymbol:  req.AssetSymbol,
		Network:      req.Network,
		FiatCurrency: req.FiatCurrency,
		BuyRate:      req.BuyRate,
		FeePct:       req.FeePct,
		FeeFlat:      req.FeeFlat,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid payload.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update rate.")
		return
	}
	writeJSON(w, http.StatusOK, httpdto.SuccessResponse{Success: true})
}

func (h *AdminHandler) DeleteRate(w http.ResponseWriter, r *http.Request) {
	var req httpdto.DeleteByIDRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.")
		return
	}
	if err := h.Rates.DeleteRate(r.Context(), req.ID); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid payload.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete rate.")
		return
	}
	writeJSON(w, http.StatusOK, httpdto.SuccessResponse{Success: true})
}

func (h *AdminHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.Settings.GetSettings(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to read settings.")
		return
	}
	writeJSON(w, http.StatusOK, httpdto.SettingsRequest{
		DepositMode:       string(settings.DepositMode),
		FallbackToFixed:   settings.FallbackToFixed,
		FixedAddresses:    settings.FixedAddresses,
		ExplorerTemplates: settings.ExplorerTemplates,
	})
}

func (h *AdminHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req httpdto.SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payload.")
		return
	}

	err := h.Settings.UpdateSettings(r.Context(), &domain.Settings{
		DepositMode:       domain.DepositMode(req.DepositMode),
		FallbackToFixed:   req.FallbackToFixed,
		FixedAddresses:    req.FixedAddresses,
		ExplorerTemplates: req.ExplorerTemplates,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			writeError(w, http.StatusBadRequest, "Invalid payload.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to update settings.")
		return
	}
	writeJSON(w, http.StatusOK, httpdto.SuccessResponse{Success: true})
}

func toRateResponses(rates []*domain.Rate) []httpdto.RateResponse {
	responses := make([]httpdto.RateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = httpdto.RateResponse{
			ID:           rate.ID,
			AssetSymbol:  rate.AssetSymbol,
			Network:      rate.Network,
			FiatCurrency: rate.FiatCurrency,
			BuyRate:      rate.BuyRate,
			FeePct:       rate.FeePct,
			FeeFlat:      rate.FeeFlat,
			UpdatedAt:    rate.UpdatedAt,
		}
	}
	return responses
}
