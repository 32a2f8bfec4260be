package httpadapter

import (
	"net/http"
)

// handleEthPrice returns the current fiat price of one volatile unit.
func (h *Handler) handleEthPrice(w http.ResponseWriter, r *http.Request) {
	price, err := h.svc.EthPrice(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, priceResponse{Price: price.Dec()})
}

// handleConvert converts the volatile base units given in the amount query
// parameter into fiat base units at the current price.
func (h *Handler) handleConvert(w http.ResponseWriter, r *http.Request) {
	amount, err := parseAmount(r.URL.Query().Get("amount"))
	if err != nil {
		http.Error(w, "invalid amount: "+err.Error(), http.StatusBadRequest)
		return
	}
	value, err := h.svc.ConvertEthToUsd(r.Context(), amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, convertResponse{Amount: amount.Dec(), Value: value.Dec()})
}
