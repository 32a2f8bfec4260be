package httpadapter

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"fundraise-ledger/internal/core/domain"
)

// Amounts are decimal strings of base units.

type createFundraiseRequest struct {
	Name   string `json:"name"`
	Target string `json:"target"`
}

type fundRequest struct {
	StableAmount string `json:"stable_amount"`
	Deposit      string `json:"deposit"`
}

type fundraiseResponse struct {
	ID            int64     `json:"id"`
	Creator       string    `json:"creator"`
	Name          string    `json:"name"`
	Target        string    `json:"target"`
	TotalStable   string    `json:"total_stable"`
	TotalVolatile string    `json:"total_volatile"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type eventResponse struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	FundraiseID    int64     `json:"fundraise_id"`
	Account        string    `json:"account,omitempty"`
	Target         string    `json:"target,omitempty"`
	StableAmount   string    `json:"stable_amount,omitempty"`
	VolatileAmount string    `json:"volatile_amount,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
}

type creatorFundraisesResponse struct {
	Creator    string  `json:"creator"`
	Fundraises []int64 `json:"fundraises"`
}

type priceResponse struct {
	Price string `json:"price"`
}

type convertResponse struct {
	Amount string `json:"amount"`
	Value  string `json:"value"`
}

func toFundraiseResponse(c *domain.Campaign) fundraiseResponse {
	return fundraiseResponse{
		ID:            c.ID,
		Creator:       c.Creator.Hex(),
		Name:          c.Name,
		Target:        c.Target.Dec(),
		TotalStable:   c.TotalStable.Dec(),
		TotalVolatile: c.TotalVolatile.Dec(),
		Status:        string(c.Status()),
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func toEventResponse(ev domain.Event) eventResponse {
	resp := eventResponse{
		ID:             ev.ID.String(),
		Kind:           string(ev.Kind),
		FundraiseID:    ev.CampaignID,
		Target:         decOrEmpty(ev.Target),
		StableAmount:   decOrEmpty(ev.StableAmount),
		VolatileAmount: decOrEmpty(ev.VolatileAmount),
		RecordedAt:     ev.RecordedAt,
	}
	if ev.Account != (common.Address{}) {
		resp.Account = ev.Account.Hex()
	}
	return resp
}

func decOrEmpty(v *uint256.Int) string {
	if v == nil {
		return ""
	}
	return v.Dec()
}
