package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"

	"fundraise-ledger/internal/core/domain"
)

// LedgerStore is the authoritative storage of campaigns, the creator index and
// the id counter. It is an outbound port; implementations must be safe for
// concurrent use and must never let two units of work interleave on the same
// campaign.
type LedgerStore interface {
	// Atomic runs fn as one unit of work. Every mutation staged through tx
	// commits together when fn returns nil; nothing is kept otherwise,
	// including the counter advance.
	Atomic(ctx context.Context, fn func(tx LedgerTx) error) error

	// Get returns a copy of the campaign or domain.ErrNotFound.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	// CreatorCampaigns returns the creator's campaign ids in creation order,
	// empty when there are none.
	CreatorCampaigns(ctx context.Context, creator common.Address) ([]int64, error)
	// Events returns the campaign's event log, oldest first.
	Events(ctx context.Context, id int64) ([]domain.Event, error)
}

// LedgerTx is the mutation surface available inside a unit of work.
type LedgerTx interface {
	// NextID returns the counter value incremented by one.
	NextID(ctx context.Context) (int64, error)
	// Insert adds a new record; domain.ErrDuplicateID if the id exists.
	Insert(ctx context.Context, c *domain.Campaign) error
	// Get returns the record as seen by this unit of work, locking it until
	// the unit ends. domain.ErrNotFound when absent.
	Get(ctx context.Context, id int64) (*domain.Campaign, error)
	// Update applies mutate to the stored record. domain.ErrNotFound when absent.
	Update(ctx context.Context, id int64, mutate func(c *domain.Campaign) error) error
	// AppendToCreatorIndex appends id to the creator's sequence.
	AppendToCreatorIndex(ctx context.Context, creator common.Address, id int64) error
	// ClaimDeposit marks a volatile deposit reference as credited to id.
	// domain.ErrDepositClaimed when it was claimed before.
	ClaimDeposit(ctx context.Context, ref string, id int64) error
	// AppendEvent appends ev to its campaign's log.
	AppendEvent(ctx context.Context, ev domain.Event) error
}
