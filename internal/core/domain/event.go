package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// EventKind names a state transition of a campaign.
type EventKind string

const (
	EventFundraiseCreated EventKind = "FundraiseCreated"
	EventFunded           EventKind = "Funded"
	EventWithdrawed       EventKind = "Withdrawed"
)

// Event is an immutable fact about a campaign. Which amount fields are set
// depends on Kind:
//
//	FundraiseCreated: Account (creator), Target
//	Funded:           Account (contributor), StableAmount, VolatileAmount
//	Withdrawed:       StableAmount, VolatileAmount
type Event struct {
	ID             uuid.UUID
	Kind           EventKind
	CampaignID     int64
	Account        common.Address
	Target         *uint256.Int
	StableAmount   *uint256.Int
	VolatileAmount *uint256.Int
	RecordedAt     time.Time
}

// FundraiseCreated records a new campaign owned by creator.
func FundraiseCreated(id int64, creator common.Address, target *uint256.Int, at time.Time) Event {
	return Event{
		ID:         uuid.New(),
		Kind:       EventFundraiseCreated,
		CampaignID: id,
		Account:    creator,
		Target:     target.Clone(),
		RecordedAt: at,
	}
}

// Funded records one contribution, in both assets, by contributor.
func Funded(id int64, contributor common.Address, stable, volatile *uint256.Int, at time.Time) Event {
	return Event{
		ID:             uuid.New(),
		Kind:           EventFunded,
		CampaignID:     id,
		Account:        contributor,
		StableAmount:   stable.Clone(),
		VolatileAmount: volatile.Clone(),
		RecordedAt:     at,
	}
}

// Withdrawed records the payout of the campaign totals to its creator.
func Withdrawed(id int64, stable, volatile *uint256.Int, at time.Time) Event {
	return Event{
		ID:             uuid.New(),
		Kind:           EventWithdrawed,
		CampaignID:     id,
		StableAmount:   stable.Clone(),
		VolatileAmount: volatile.Clone(),
		RecordedAt:     at,
	}
}
