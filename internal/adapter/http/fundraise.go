package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/holiman/uint256"

	"fundraise-ledger/internal/core/domain"
)

var errInvalidID = errors.New("invalid fundraise id")

// handleCreateFundraise opens a campaign owned by the authenticated caller.
// It answers 201 with the FundraiseCreated event.
func (h *Handler) handleCreateFundraise(w http.ResponseWriter, r *http.Request) {
	var req createFundraiseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	target, err := parseAmount(req.Target)
	if err != nil {
		http.Error(w, "invalid target: "+err.Error(), http.StatusBadRequest)
		return
	}

	ev, err := h.svc.CreateFundraise(r.Context(), callerFrom(r.Context()), req.Name, target)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, toEventResponse(ev))
}

func (h *Handler) handleGetFundraise(w http.ResponseWriter, r *http.Request) {
	id, err := fundraiseID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, toFundraiseResponse(c))
}

// handleFund records a contribution from the authenticated caller. An empty
// stable_amount contributes nothing in stable units; an empty deposit
// contributes nothing in the volatile asset. It answers 202 when the stable
// pull is recorded but not yet confirmed.
func (h *Handler) handleFund(w http.ResponseWriter, r *http.Request) {
	id, err := fundraiseID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var req fundRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	stable := new(uint256.Int)
	if req.StableAmount != "" {
		if stable, err = parseAmount(req.StableAmount); err != nil {
			http.Error(w, "invalid stable_amount: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	ev, err := h.svc.Fund(r.Context(), callerFrom(r.Context()), id, stable, req.Deposit)
	h.writeEvent(w, r, ev, err)
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, err := fundraiseID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ev, err := h.svc.Withdraw(r.Context(), callerFrom(r.Context()), id)
	h.writeEvent(w, r, ev, err)
}

func (h *Handler) handleEvents(w http.ResponseWriter, r *http.Request) {
	id, err := fundraiseID(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	events, err := h.svc.Events(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := make([]eventResponse, 0, len(events))
	for _, ev := range events {
		resp = append(resp, toEventResponse(ev))
	}
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleCreatorFundraises(w http.ResponseWriter, r *http.Request) {
	address := chi.URLParam(r, "address")
	if !common.IsHexAddress(address) {
		http.Error(w, "invalid address", http.StatusBadRequest)
		return
	}
	creator := common.HexToAddress(address)
	ids, err := h.svc.GetCreatorCampaigns(r.Context(), creator)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if ids == nil {
		ids = []int64{}
	}
	h.writeJSON(w, http.StatusOK, creatorFundraisesResponse{Creator: creator.Hex(), Fundraises: ids})
}

func fundraiseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func parseAmount(s string) (*uint256.Int, error) {
	if s == "" {
		return nil, errors.New("amount is required")
	}
	return domain.ParseAmount(s)
}
