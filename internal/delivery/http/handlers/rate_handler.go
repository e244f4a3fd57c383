package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/LavaJover/shvark-exchange-service/internal/domain"
	rootusecase "github.com/LavaJover/shvark-exchange-service/internal/usecase"
)

// RateHandler is the public pricing surface used by order forms before an
// order exists.
type RateHandler struct {
	Rates rootusecase.RateUsecase
}

func NewRateHandler(rates rootusecase.RateUsecase) *RateHandler {
	return &RateHandler{Rates: rates}
}

func (h *RateHandler) ListRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.Rates.ListRates(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list rates.")
		return
	}
	writeJSON(w, http.StatusOK, toRateResponses(rates))
}

// Estimate quotes a payout without creating an order. The quote is advisory;
// only the snapshot taken at order creation binds.
func (h *RateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	amount, err := strconv.ParseFloat(query.Get("amount"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request.")
		return
	}

	quote, err := h.Rates.Estimate(r.Context(),
		query.Get("asset"), query.Get("network"), query.Get("fiat"), amount)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidation):
			writeError(w, http.StatusBadRequest, "Invalid request.")
		case errors.Is(err, domain.ErrRateMissing):
			writeError(w, http.StatusBadRequest, "Rate missing for this pair.")
		default:
			writeError(w, http.StatusInternalServerError, "Failed to estimate.")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]float64{
		"gross_fiat":  quote.Gross,
		"fee_fiat":    quote.Fee,
		"payout_fiat": quote.Payout,
	})
}
