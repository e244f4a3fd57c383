package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	orderdto "github.com/LavaJover/shvark-exchange-service/internal/usecase/dto/order"
	httpdto "github.com/LavaJover/shvark-exchange-service/internal/delivery/http/dto/order"
	usecase "github.com/LavaJover/shvark-exchange-service/internal/usecase/order"
	"github.com/go-chi/chi/v5"
)

type OrderHandler struct {
	Orders usecase.OrderUsecase
}

func NewOrderHandler(orders usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{Orders: orders}
}

func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req httpdto.CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request.")
		return
	}

	output, err := h.Orders.CreateOrder(r.Context(), &orderdto.CreateOrderInput{
		AssetSymbol:  strings.TrimSpace(req.AssetSymbol),
		Network:      strings.TrimSpace(req.Network),
		AmountCrypto: req.AmountCrypto,
		FiatCurrency: strings.TrimSpace(req.FiatCurrency),
		PayoutMethod: strings.TrimSpace(req.PayoutMethod),
		ClientIP:     ClientIP(r),
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, "Invalid request.")
		case errors.Is(err, domain.ErrRateMissing):
			writeError(w, http.StatusBadRequest, "Rate missing for this pair.")
		case errors.Is(err, domain.ErrAddressUnavailable):
			writeError(w, http.StatusBadRequest, "No deposit addresses available.")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to create order.")
		}
		return
	}

	writeJSON(w, http.StatusCreated, httpdto.CreateOrderResponse{
		PublicID: output.PublicID,
		Token:    output.Token,
	})
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	suppliedToken := r.URL.Query().Get("t")
	if suppliedToken == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	view, err := h.Orders.GetOrderView(r.Context(), chi.URLParam(r, "publicId"), suppliedToken)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			writeError(w, http.StatusNotFound, "Order not found.")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to read order.")
		return
	}

	writeJSON(w, http.StatusOK, httpdto.OrderViewResponse{
		PublicID:      view.PublicID,
		AssetSymbol:   view.AssetSymbol,
		Network:       view.Network,
		AmountCrypto:  view.AmountCrypto,
		FiatCurrency:  view.FiatCurrency,
		PayoutMethod:  view.PayoutMethod,
		PayoutCountry: view.PayoutCountry,
		PayoutDetails: view.PayoutDetails,
		DepositAddress: view.DepositAddress,
		Status:         view.Status,
		ConfirmationsRequired: view.ConfirmationsRequired,
		ConfirmationsCurrent:  view.ConfirmationsCurrent,
		Txid:                  view.Txid,
		ExplorerURL:           view.ExplorerURL,
		CreatedAt:             view.CreatedAt,
	})
}

func (h *OrderHandler) SubmitTxid(w http.ResponseWriter, r *http.Request) {
	suppliedToken := r.URL.Query().Get("t")
	if suppliedToken == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var req httpdto.SubmitTxidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid TXID.")
		return
	}

	err := h.Orders.SubmitTxid(r.Context(), chi.URLParam(r, "publicId"), suppliedToken, req.Txid)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, "Invalid TXID.")
		case errors.Is(err, domain.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "Order not found.")
		case errors.Is(err, domain.ErrOrderLocked):
			writeError(w, http.StatusBadRequest, "Order locked.")
		default:
			writeError(w, http.StatusInternalServerError, "Unable to update TXID.")
		}
		return
	}

	writeJSON(w, http.StatusOK, httpdto.SuccessResponse{Success: true})
}

func (h *OrderHandler) UpdatePayout(w http.ResponseWriter, r *http.Request) {
	suppliedToken := r.URL.Query().Get("t")
	if suppliedToken == "" {
		writeError(w, http.StatusUnauthorized, "Unauthorized.")
		return
	}

	var req httpdto.UpdatePayoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payout details.")
		return
	}

	err := h.Orders.UpdatePayoutDetails(r.Context(), chi.URLParam(r, "publicId"), suppliedToken, &orderdto.UpdatePayoutInput{
		PayoutMethod: strings.TrimSpace(req.PayoutMethod),
		Country:      strings.TrimSpace(req.Country),
		Details:      req.Details,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, "Invalid payout details.")
		case errors.Is(err, domain.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "Order not found.")
		case errors.Is(err, domain.ErrOrderLocked):
			writeError(w, http.StatusBadRequest, "Order locked.")
		default:
			writeError(w, http.StatusInternalServerError, "Unable to update payout details.")
		}
		return
	}

	writeJSON(w, http.StatusOK, httpdto.SuccessResponse{Success: true})
}
