package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"

	"fundraise-ledger/internal/core/domain"
	"fundraise-ledger/internal/core/port"
)

// LedgerStore implements port.LedgerStore in process memory. A unit of work
// holds the store lock from start to end and stages its writes in an overlay
// that is applied only when the unit succeeds.
//
// Units on unrelated campaigns, and reads, wait for the running unit. With
// the chain capabilities (STORE_DRIVER=memory against a real node) every
// request therefore queues behind any oracle read or receipt wait in flight.
// Use the postgres driver for concurrent traffic.
type LedgerStore struct {
	mu        sync.RWMutex
	counter   int64
	campaigns map[int64]*domain.Campaign
	creators  map[common.Address][]int64
	deposits  map[string]int64
	events    map[int64][]domain.Event
}

// NewLedgerStore returns an empty store whose first id is 1.
func NewLedgerStore() *LedgerStore {
	return &LedgerStore{
		campaigns: make(map[int64]*domain.Campaign),
		creators:  make(map[common.Address][]int64),
		deposits:  make(map[string]int64),
		events:    make(map[int64][]domain.Event),
	}
}

// Atomic runs fn against a staging overlay and commits it if fn succeeds.
// The store lock is held while fn runs, including any transfer fn makes.
func (s *LedgerStore) Atomic(ctx context.Context, fn func(tx port.LedgerTx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	tx := &ledgerTx{
		store:     s,
		counter:   s.counter,
		campaigns: make(map[int64]*domain.Campaign),
		creators:  make(map[common.Address][]int64),
		deposits:  make(map[string]int64),
	}
	if err := fn(tx); err != nil {
		return err
	}
	tx.commit()
	return nil
}

// Get returns a copy of the committed campaign.
func (s *LedgerStore) Get(_ context.Context, id int64) (*domain.Campaign, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.campaigns[id]
	if !ok {
		return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return c.Clone(), nil
}

// CreatorCampaigns returns the creator's ids in creation order.
func (s *LedgerStore) CreatorCampaigns(_ context.Context, creator common.Address) ([]int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]int64, len(s.creators[creator]))
	copy(ids, s.creators[creator])
	return ids, nil
}

// Events returns the campaign's event log; domain.ErrNotFound for unknown ids.
func (s *LedgerStore) Events(_ context.Context, id int64) ([]domain.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.campaigns[id]; !ok {
		return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	events := make([]domain.Event, len(s.events[id]))
	copy(events, s.events[id])
	return events, nil
}

type ledgerTx struct {
	store *LedgerStore

	counter   int64
	campaigns map[int64]*domain.Campaign
	creators  map[common.Address][]int64
	deposits  map[string]int64
	events    []domain.Event
}

func (tx *ledgerTx) NextID(_ context.Context) (int64, error) {
	tx.counter++
	return tx.counter, nil
}

func (tx *ledgerTx) Insert(_ context.Context, c *domain.Campaign) error {
	if _, ok := tx.lookup(c.ID); ok {
		return fmt.Errorf("campaign %d: %w", c.ID, domain.ErrDuplicateID)
	}
	tx.campaigns[c.ID] = c.Clone()
	return nil
}

func (tx *ledgerTx) Get(_ context.Context, id int64) (*domain.Campaign, error) {
	c, ok := tx.lookup(id)
	if !ok {
		return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	return c.Clone(), nil
}

func (tx *ledgerTx) Update(_ context.Context, id int64, mutate func(c *domain.Campaign) error) error {
	c, ok := tx.lookup(id)
	if !ok {
		return fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	staged := c.Clone()
	if err := mutate(staged); err != nil {
		return err
	}
	tx.campaigns[id] = staged
	return nil
}

func (tx *ledgerTx) AppendToCreatorIndex(_ context.Context, creator common.Address, id int64) error {
	tx.creators[creator] = append(tx.creators[creator], id)
	return nil
}

func (tx *ledgerTx) ClaimDeposit(_ context.Context, ref string, id int64) error {
	_, staged := tx.deposits[ref]
	_, committed := tx.store.deposits[ref]
	if staged || committed {
		return fmt.Errorf("deposit %s: %w", ref, domain.ErrDepositClaimed)
	}
	tx.deposits[ref] = id
	return nil
}

func (tx *ledgerTx) AppendEvent(_ context.Context, ev domain.Event) error {
	if _, ok := tx.lookup(ev.CampaignID); !ok {
		return fmt.Errorf("campaign %d: %w", ev.CampaignID, domain.ErrNotFound)
	}
	tx.events = append(tx.events, ev)
	return nil
}

// lookup prefers the staged version of a record over the committed one.
func (tx *ledgerTx) lookup(id int64) (*domain.Campaign, bool) {
	if c, ok := tx.campaigns[id]; ok {
		return c, true
	}
	c, ok := tx.store.campaigns[id]
	return c, ok
}

func (tx *ledgerTx) commit() {
	s := tx.store
	s.counter = tx.counter
	for id, c := range tx.campaigns {
		s.campaigns[id] = c
	}
	for creator, ids := range tx.creators {
		s.creators[creator] = append(s.creators[creator], ids...)
	}
	for ref, id := range tx.deposits {
		s.deposits[ref] = id
	}
	for _, ev := range tx.events {
		s.events[ev.CampaignID] = append(s.events[ev.CampaignID], ev)
	}
}
