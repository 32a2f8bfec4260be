package domain

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Status is the lifecycle state of a campaign. A campaign starts active and
// moves to withdrawn exactly once. While a withdrawal is paid out leg by leg
// it is withdrawing: the stable leg is recorded as paid and the volatile leg
// is still owed.
type Status string

const (
	StatusActive      Status = "active"
	StatusWithdrawing Status = "withdrawing"
	StatusWithdrawn   Status = "withdrawn"
)

// Campaign represents a fundraise. Target and TotalStable are in fiat/stable
// base units (6 decimals), TotalVolatile in wei (18 decimals).
type Campaign struct {
	ID            int64
	Creator       common.Address
	Name          string
	Target        *uint256.Int
	TotalStable   *uint256.Int
	TotalVolatile *uint256.Int
	// StablePaidOut is set once the stable leg of the withdrawal has left
	// custody (or was empty). It is never paid again.
	StablePaidOut bool
	Withdrawn     bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewCampaign returns an active campaign with zero totals.
func NewCampaign(id int64, creator common.Address, name string, target *uint256.Int, now time.Time) *Campaign {
	return &Campaign{
		ID:            id,
		Creator:       creator,
		Name:          name,
		Target:        target.Clone(),
		TotalStable:   new(uint256.Int),
		TotalVolatile: new(uint256.Int),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Status reports the lifecycle state derived from the payout flags.
func (c *Campaign) Status() Status {
	switch {
	case c.Withdrawn:
		return StatusWithdrawn
	case c.StablePaidOut:
		return StatusWithdrawing
	default:
		return StatusActive
	}
}

// Closed reports whether a withdrawal has started. A closed campaign takes no
// further contributions.
func (c *Campaign) Closed() bool {
	return c.Withdrawn || c.StablePaidOut
}

// Clone returns a deep copy so callers never share amount pointers with a store.
func (c *Campaign) Clone() *Campaign {
	cp := *c
	cp.Target = c.Target.Clone()
	cp.TotalStable = c.TotalStable.Clone()
	cp.TotalVolatile = c.TotalVolatile.Clone()
	return &cp
}
