package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fundraise-ledger/internal/adapter/custody"
	"fundraise-ledger/internal/adapter/memory"
	"fundraise-ledger/internal/adapter/price"
	"fundraise-ledger/internal/core/domain"
	"fundraise-ledger/internal/core/port"
	"fundraise-ledger/internal/core/port/mocks"
)

var (
	vault = common.HexToAddress("0x000000000000000000000000000000000000c0de")
	alice = common.HexToAddress("0x00000000000000000000000000000000000000a1")
	bob   = common.HexToAddress("0x00000000000000000000000000000000000000b2")
	carol = common.HexToAddress("0x00000000000000000000000000000000000000c3")
)

var _ port.FundraiseUseCase = (*FundraiseUseCase)(nil)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func usd(t *testing.T, s string) *uint256.Int {
	t.Helper()
	v, err := domain.ParseUnits(s, domain.FiatDecimals)
	require.NoError(t, err)
	return v
}

func eth(t *testing.T, s string) *uint256.Int {
	t.Helper()
	v, err := domain.ParseUnits(s, domain.VolatileDecimals)
	require.NoError(t, err)
	return v
}

type fixture struct {
	store  *memory.LedgerStore
	book   *custody.Book
	oracle *mocks.MockOracle
	uc     *FundraiseUseCase
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		store:  memory.NewLedgerStore(),
		book:   custody.NewBook(vault),
		oracle: mocks.NewMockOracle(t),
	}
	f.uc = NewFundraiseUseCase(f.store, price.NewConverter(f.oracle),
		f.book.StableToken(), f.book.VolatileAsset(), vault, discard())
	return f
}

// contribute gives from enough balance and allowance, then funds id.
func (f *fixture) contribute(t *testing.T, from common.Address, id int64, stable, volatile *uint256.Int) (domain.Event, error) {
	t.Helper()
	f.book.Mint(custody.Stable, from, stable)
	f.book.Approve(from, stable)
	ref := ""
	if !volatile.IsZero() {
		f.book.Mint(custody.Volatile, from, volatile)
		var err error
		ref, err = f.book.Send(from, volatile)
		require.NoError(t, err)
	}
	return f.uc.Fund(context.Background(), from, id, stable, ref)
}

func TestCreateFundraise(t *testing.T) {
	f := newFixture(t)

	ev, err := f.uc.CreateFundraise(context.Background(), alice, "Lol", usd(t, "100"))
	require.NoError(t, err)
	assert.Equal(t, domain.EventFundraiseCreated, ev.Kind)
	assert.Equal(t, int64(1), ev.CampaignID)
	assert.Equal(t, alice, ev.Account)
	assert.Equal(t, usd(t, "100"), ev.Target)

	c, err := f.uc.GetCampaign(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Lol", c.Name)
	assert.Equal(t, alice, c.Creator)
	assert.True(t, c.TotalStable.IsZero())
	assert.True(t, c.TotalVolatile.IsZero())
	assert.Equal(t, domain.StatusActive, c.Status())

	ids, err := f.uc.GetCreatorCampaigns(context.Background(), alice)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids)
}

func TestCreateFundraiseRejectsNonPositiveTarget(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateFundraise(context.Background(), alice, "zero", new(uint256.Int))
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)
	_, err = f.uc.CreateFundraise(context.Background(), alice, "nil", nil)
	assert.ErrorIs(t, err, domain.ErrInvalidTarget)

	// rejected calls do not consume ids
	ev, err := f.uc.CreateFundraise(context.Background(), alice, "ok", usd(t, "1"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), ev.CampaignID)
}

func TestCreatorIndexInterleaving(t *testing.T) {
	f := newFixture(t)
	for _, creator := range []common.Address{alice, alice, alice, bob, bob, carol} {
		_, err := f.uc.CreateFundraise(context.Background(), creator, "x", usd(t, "100"))
		require.NoError(t, err)
	}

	want := map[common.Address][]int64{alice: {1, 2, 3}, bob: {4, 5}, carol: {6}}
	for creator, ids := range want {
		got, err := f.uc.GetCreatorCampaigns(context.Background(), creator)
		require.NoError(t, err)
		assert.Equal(t, ids, got)
	}

	none, err := f.uc.GetCreatorCampaigns(context.Background(), vault)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFundAccumulates(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CreateFundraise(context.Background(), alice, "Lol", usd(t, "100"))
	require.NoError(t, err)

	ev, err := f.contribute(t, alice, 1, usd(t, "10"), new(uint256.Int))
	require.NoError(t, err)
	assert.Equal(t, domain.EventFunded, ev.Kind)
	assert.Equal(t, usd(t, "10"), ev.StableAmount)
	assert.True(t, ev.VolatileAmount.IsZero())

	ev, err = f.contribute(t, bob, 1, new(uint256.Int), eth(t, "0.01"))
	require.NoError(t, err)
	assert.Equal(t, bob, ev.Account)
	assert.Equal(t, eth(t, "0.01"), ev.VolatileAmount)

	_, err = f.contribute(t, alice, 1, usd(t, "10"), eth(t, "0.01"))
	require.NoError(t, err)

	c, err := f.uc.GetCampaign(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, usd(t, "20"), c.TotalStable)
	assert.Equal(t, eth(t, "0.02"), c.TotalVolatile)
	assert.Equal(t, usd(t, "20"), f.book.Balance(custody.Stable, vault))
	assert.Equal(t, eth(t, "0.02"), f.book.Balance(custody.Volatile, vault))

	events, err := f.uc.Events(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, events, 4)
}

func TestFundUnknownCampaign(t *testing.T) {
	f := newFixture(t)
	_, err := f.contribute(t, alice, 9, usd(t, "10"), new(uint256.Int))
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, usd(t, "10"), f.book.Balance(custody.Stable, alice))
}

func TestFundTransferFailedLeavesNoTrace(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CreateFundraise(context.Background(), alice, "Lol", usd(t, "100"))
	require.NoError(t, err)

	f.book.Mint(custody.Volatile, bob, eth(t, "1"))
	ref, err := f.book.Send(bob, eth(t, "1"))
	require.NoError(t, err)

	// no stable balance or allowance
	_, err = f.uc.Fund(context.Background(), bob, 1, usd(t, "5"), ref)
	require.ErrorIs(t, err, domain.ErrTransferFailed)
	assert.ErrorIs(t, err, custody.ErrInsufficientAllowance)

	c, err := f.uc.GetCampaign(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, c.TotalStable.IsZero())
	assert.True(t, c.TotalVolatile.IsZero())

	// the deposit claim rolled back with the unit
	_, err = f.uc.Fund(context.Background(), bob, 1, nil, ref)
	require.NoError(t, err)
	c, err = f.uc.GetCampaign(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, eth(t, "1"), c.TotalVolatile)
}

func TestFundRejectsDepositReplay(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CreateFundraise(context.Background(), alice, "Lol", usd(t, "100"))
	require.NoError(t, err)

	f.book.Mint(custody.Volatile, bob, eth(t, "1"))
	ref, err := f.book.Send(bob, eth(t, "1"))
	require.NoError(t, err)

	_, err = f.uc.Fund(context.Background(), bob, 1, nil, ref)
	require.NoError(t, err)
	_, err = f.uc.Fund(context.Background(), bob, 1, nil, ref)
	assert.ErrorIs(t, err, domain.ErrDepositClaimed)

	c, err := f.uc.GetCampaign(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, eth(t, "1"), c.TotalVolatile)
}

func TestFundCreditsReceivedAmountOnly(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CreateFundraise(context.Background(), alice, "Lol", usd(t, "100"))
	require.NoError(t, err)

	f.book.Mint(custody.Volatile, bob, eth(t, "1"))
	ref, err := f.book.Send(bob, eth(t, "1"))
	require.NoError(t, err)

	// carol cannot claim bob's deposit
	_, err = f.uc.Fund(context.Background(), carol, 1, nil, ref)
	assert.ErrorIs(t, err, domain.ErrTransferFailed)
	assert.ErrorIs(t, err, custody.ErrDepositSender)
}

func TestWithdrawScenario(t *testing.T) {
	f := newFixture(t)
	f.oracle.EXPECT().Price(mock.Anything).Return(usd(t, "1800"), true, nil)

	_, err := f.uc.CreateFundraise(context.Background(), alice, "Lol", usd(t, "100"))
	require.NoError(t, err)
	_, err = f.contribute(t, alice, 1, usd(t, "10"), new(uint256.Int))
	require.NoError(t, err)
	_, err = f.contribute(t, alice, 1, new(uint256.Int), eth(t, "0.01"))
	require.NoError(t, err)

	// 10 + 18 = 28 < 100
	_, err = f.uc.Withdraw(context.Background(), alice, 1)
	require.ErrorIs(t, err, domain.ErrCannotWithdraw)
	c, err := f.uc.GetCampaign(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, c.Withdrawn)
	assert.Equal(t, usd(t, "10"), c.TotalStable)

	// + 50 + 54 = 132 >= 100
	_, err = f.contribute(t, alice, 1, usd(t, "50"), eth(t, "0.03"))
	require.NoError(t, err)

	ev, err := f.uc.Withdraw(context.Background(), alice, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.EventWithdrawed, ev.Kind)
	assert.Equal(t, usd(t, "60"), ev.StableAmount)
	assert.Equal(t, eth(t, "0.04"), ev.VolatileAmount)

	c, err = f.uc.GetCampaign(context.Background(), 1)
	require.NoError(t, err)
	assert.True(t, c.Withdrawn)
	assert.Equal(t, usd(t, "60"), f.book.Balance(custody.Stable, alice))
	assert.Equal(t, eth(t, "0.04"), f.book.Balance(custody.Volatile, alice))
	assert.True(t, f.book.Balance(custody.Stable, vault).IsZero())
	assert.True(t, f.book.Balance(custody.Volatile, vault).IsZero())

	events, err := f.uc.Events(context.Background(), 1)
	require.NoError(t, err)
	withdrawals := 0
	for _, e := range events {
		if e.Kind == domain.EventWithdrawed {
			withdrawals++
		}
	}
	assert.Equal(t, 1, withdrawals)
}

func TestWithdrawByOtherAccountNeverReadsOracle(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.CreateFundraise(context.Background(), alice, "Lol", usd(t, "1"))
	require.NoError(t, err)
	_, err = f.contribute(t, bob, 1, usd(t, "10"), new(uint256.Int))
	require.NoError(t, err)

	// goal met, but bob is not the creator; the oracle mock has no expectations
	_, err = f.uc.Withdraw(context.Background(), bob, 1)
	assert.ErrorIs(t, err, domain.ErrNotFundraiseOwner)
	assert.True(t, f.book.Balance(custody.Stable, bob).IsZero())
}

func TestWithdrawUnknownCampaign(t *testing.T) {
	f := newFixture(t)
	_, err := f.uc.Withdraw(context.Background(), alice, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestWithdrawStalePrice(t *testing.T) {
	f := newFixture(t)
	f.oracle.EXPECT().Price(mock.Anything).Return(usd(t, "1800"), false, nil)

	_, err := f.uc.CreateFundraise(context.Background(), alice, "Lol", usd(t, "100"))
	require.NoError(t, err)
	_, err = f.contribute(t, alice, 1, usd(t, "200"), eth(t, "1"))
	require.NoError(t, err)

	_, err = f.uc.Withdraw(context.Background(), alice, 1)
	assert.ErrorIs(t, err, domain.ErrOracleUnavailable)

	c, err := f.uc.GetCampaign(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, c.Withdrawn)
	assert.Equal(t, usd(t, "200"), f.book.Balance(custody.Stable, vault))
}

func TestWithdrawOnlyOnce(t *testing.T) {
	f := newFixture(t)
	f.oracle.EXPECT().Price(mock.Anything).Return(usd(t, "1800"), true, nil).Once()

	_, err := f.uc.CreateFundraise(context.Background(), alice, "Lol", usd(t, "10"))
	require.NoError(t, err)
	_, err = f.contribute(t, bob, 1, usd(t, "10"), new(uint256.Int))
	require.NoError(t, err)

	_, err = f.uc.Withdraw(context.Background(), alice, 1)
	require.NoError(t, err)

	_, err = f.uc.Withdraw(context.Background(), alice, 1)
	assert.ErrorIs(t, err, domain.ErrAlreadyWithdrawn)

	_, err = f.contribute(t, bob, 1, usd(t, "10"), new(uint256.Int))
	assert.ErrorIs(t, err, domain.ErrAlreadyWithdrawn)
	assert.Equal(t, usd(t, "10"), f.book.Balance(custody.Stable, alice))
	assert.Equal(t, usd(t, "10"), f.book.Balance(custody.Stable, bob))
}

func TestWithdrawVolatilePayoutFailure(t *testing.T) {
	oracle := mocks.NewMockOracle(t)
	stable := mocks.NewMockStableToken(t)
	volatile := mocks.NewMockVolatileAsset(t)
	store := memory.NewLedgerStore()
	uc := NewFundraiseUseCase(store, price.NewConverter(oracle), stable, volatile, vault, discard())

	oracle.EXPECT().Price(mock.Anything).Return(usd(t, "1800"), true, nil).Once()
	volatile.EXPECT().Receive(mock.Anything, bob, "0xdeposit").Return(eth(t, "1"), nil).Once()
	stable.EXPECT().TransferFrom(mock.Anything, bob, vault, usd(t, "10")).Return(nil).Once()

	_, err := uc.CreateFundraise(context.Background(), alice, "Lol", usd(t, "100"))
	require.NoError(t, err)
	_, err = uc.Fund(context.Background(), bob, 1, usd(t, "10"), "0xdeposit")
	require.NoError(t, err)

	// the stable leg is paid exactly once across both attempts
	stable.EXPECT().Transfer(mock.Anything, alice, usd(t, "10")).Return(nil).Once()
	volatile.EXPECT().Transfer(mock.Anything, alice, eth(t, "1")).Return(errors.New("out of gas")).Once()

	_, err = uc.Withdraw(context.Background(), alice, 1)
	assert.ErrorIs(t, err, domain.ErrTransferFailed)

	c, err := uc.GetCampaign(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, c.Withdrawn)
	assert.True(t, c.StablePaidOut)
	assert.Equal(t, domain.StatusWithdrawing, c.Status())
	assert.Equal(t, usd(t, "10"), c.TotalStable)
	assert.Equal(t, eth(t, "1"), c.TotalVolatile)

	events, err := uc.Events(context.Background(), 1)
	require.NoError(t, err)
	assert.Len(t, events, 2)

	// a withdrawing campaign takes no contributions
	_, err = uc.Fund(context.Background(), bob, 1, usd(t, "10"), "")
	assert.ErrorIs(t, err, domain.ErrAlreadyWithdrawn)

	volatile.EXPECT().Transfer(mock.Anything, alice, eth(t, "1")).Return(nil).Once()
	ev, err := uc.Withdraw(context.Background(), alice, 1)
	require.NoError(t, err)
	assert.Equal(t, usd(t, "10"), ev.StableAmount)
	assert.Equal(t, eth(t, "1"), ev.VolatileAmount)

	c, err = uc.GetCampaign(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusWithdrawn, c.Status())

	_, err = uc.Withdraw(context.Background(), alice, 1)
	assert.ErrorIs(t, err, domain.ErrAlreadyWithdrawn)
}

// failingTransfers fails the first n volatile transfers.
type failingTransfers struct {
	port.VolatileAsset
	n int
}

func (f *failingTransfers) Transfer(ctx context.Context, to common.Address, amount *uint256.Int) error {
	if f.n > 0 {
		f.n--
		return errors.New("out of gas")
	}
	return f.VolatileAsset.Transfer(ctx, to, amount)
}

// TestWithdrawRetryPaysStableOnce retries a withdrawal whose volatile leg
// failed; the custody balance of the other campaign must stay intact.
func TestWithdrawRetryPaysStableOnce(t *testing.T) {
	store := memory.NewLedgerStore()
	book := custody.NewBook(vault)
	oracle := mocks.NewMockOracle(t)
	oracle.EXPECT().Price(mock.Anything).Return(usd(t, "1800"), true, nil)
	volatile := &failingTransfers{VolatileAsset: book.VolatileAsset(), n: 1}
	uc := NewFundraiseUseCase(store, price.NewConverter(oracle), book.StableToken(), volatile, vault, discard())
	ctx := context.Background()

	_, err := uc.CreateFundraise(ctx, alice, "first", usd(t, "10"))
	require.NoError(t, err)
	_, err = uc.CreateFundraise(ctx, carol, "second", usd(t, "10"))
	require.NoError(t, err)

	book.Mint(custody.Stable, bob, usd(t, "20"))
	book.Approve(bob, usd(t, "20"))
	book.Mint(custody.Volatile, bob, eth(t, "1"))
	ref, err := book.Send(bob, eth(t, "1"))
	require.NoError(t, err)
	_, err = uc.Fund(ctx, bob, 1, usd(t, "10"), ref)
	require.NoError(t, err)
	_, err = uc.Fund(ctx, bob, 2, usd(t, "10"), "")
	require.NoError(t, err)

	_, err = uc.Withdraw(ctx, alice, 1)
	require.ErrorIs(t, err, domain.ErrTransferFailed)
	assert.Equal(t, usd(t, "10"), book.Balance(custody.Stable, alice))
	assert.Equal(t, usd(t, "10"), book.Balance(custody.Stable, vault))

	_, err = uc.Withdraw(ctx, alice, 1)
	require.NoError(t, err)
	assert.Equal(t, usd(t, "10"), book.Balance(custody.Stable, alice))
	assert.Equal(t, eth(t, "1"), book.Balance(custody.Volatile, alice))
	assert.Equal(t, usd(t, "10"), book.Balance(custody.Stable, vault))

	_, err = uc.Withdraw(ctx, carol, 2)
	require.NoError(t, err)
	assert.Equal(t, usd(t, "10"), book.Balance(custody.Stable, carol))
	assert.True(t, book.Balance(custody.Stable, vault).IsZero())
	assert.True(t, book.Balance(custody.Volatile, vault).IsZero())
}

// failingCommits rolls back the listed units of work, counted from 1, after
// their body succeeded.
type failingCommits struct {
	*memory.LedgerStore
	fail  map[int]bool
	units int
}

var errCommit = errors.New("commit failed")

func (s *failingCommits) Atomic(ctx context.Context, fn func(port.LedgerTx) error) error {
	s.units++
	if !s.fail[s.units] {
		return s.LedgerStore.Atomic(ctx, fn)
	}
	return s.LedgerStore.Atomic(ctx, func(tx port.LedgerTx) error {
		if err := fn(tx); err != nil {
			return err
		}
		return errCommit
	})
}

func TestWithdrawRecordsStableLegAfterFailedCommit(t *testing.T) {
	// units: create, fund, stable leg
	store := &failingCommits{LedgerStore: memory.NewLedgerStore(), fail: map[int]bool{3: true}}
	book := custody.NewBook(vault)
	oracle := mocks.NewMockOracle(t)
	oracle.EXPECT().Price(mock.Anything).Return(usd(t, "1800"), true, nil).Once()
	uc := NewFundraiseUseCase(store, price.NewConverter(oracle), book.StableToken(), book.VolatileAsset(), vault, discard())
	ctx := context.Background()

	_, err := uc.CreateFundraise(ctx, alice, "Lol", usd(t, "10"))
	require.NoError(t, err)
	book.Mint(custody.Stable, bob, usd(t, "10"))
	book.Approve(bob, usd(t, "10"))
	book.Mint(custody.Volatile, bob, eth(t, "1"))
	ref, err := book.Send(bob, eth(t, "1"))
	require.NoError(t, err)
	_, err = uc.Fund(ctx, bob, 1, usd(t, "10"), ref)
	require.NoError(t, err)

	ev, err := uc.Withdraw(ctx, alice, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.EventWithdrawed, ev.Kind)
	assert.Equal(t, usd(t, "10"), book.Balance(custody.Stable, alice))
	assert.Equal(t, eth(t, "1"), book.Balance(custody.Volatile, alice))

	c, err := uc.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.True(t, c.StablePaidOut)
	assert.True(t, c.Withdrawn)
}

func TestWithdrawRecordsVolatileLegAfterFailedCommit(t *testing.T) {
	// units: create, fund, stable leg, volatile leg
	store := &failingCommits{LedgerStore: memory.NewLedgerStore(), fail: map[int]bool{4: true}}
	book := custody.NewBook(vault)
	oracle := mocks.NewMockOracle(t)
	oracle.EXPECT().Price(mock.Anything).Return(usd(t, "1800"), true, nil).Once()
	uc := NewFundraiseUseCase(store, price.NewConverter(oracle), book.StableToken(), book.VolatileAsset(), vault, discard())
	ctx := context.Background()

	_, err := uc.CreateFundraise(ctx, alice, "Lol", usd(t, "1"))
	require.NoError(t, err)
	book.Mint(custody.Volatile, bob, eth(t, "1"))
	ref, err := book.Send(bob, eth(t, "1"))
	require.NoError(t, err)
	_, err = uc.Fund(ctx, bob, 1, nil, ref)
	require.NoError(t, err)

	_, err = uc.Withdraw(ctx, alice, 1)
	require.NoError(t, err)
	assert.Equal(t, eth(t, "1"), book.Balance(custody.Volatile, alice))

	_, err = uc.Withdraw(ctx, alice, 1)
	assert.ErrorIs(t, err, domain.ErrAlreadyWithdrawn)
	assert.Equal(t, eth(t, "1"), book.Balance(custody.Volatile, alice))

	events, err := uc.Events(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, domain.EventWithdrawed, events[2].Kind)
}

func TestWithdrawPendingPayout(t *testing.T) {
	oracle := mocks.NewMockOracle(t)
	stable := mocks.NewMockStableToken(t)
	volatile := mocks.NewMockVolatileAsset(t)
	uc := NewFundraiseUseCase(memory.NewLedgerStore(), price.NewConverter(oracle), stable, volatile, vault, discard())
	ctx := context.Background()

	oracle.EXPECT().Price(mock.Anything).Return(usd(t, "1800"), true, nil).Once()
	volatile.EXPECT().Receive(mock.Anything, bob, "0xdeposit").Return(eth(t, "1"), nil).Once()
	stable.EXPECT().TransferFrom(mock.Anything, bob, vault, usd(t, "10")).Return(nil).Once()

	_, err := uc.CreateFundraise(ctx, alice, "Lol", usd(t, "100"))
	require.NoError(t, err)
	_, err = uc.Fund(ctx, bob, 1, usd(t, "10"), "0xdeposit")
	require.NoError(t, err)

	unconfirmed := fmt.Errorf("%w: 0xabc: context deadline exceeded", domain.ErrTransferPending)
	stable.EXPECT().Transfer(mock.Anything, alice, usd(t, "10")).Return(unconfirmed).Once()
	volatile.EXPECT().Transfer(mock.Anything, alice, eth(t, "1")).Return(nil).Once()

	ev, err := uc.Withdraw(ctx, alice, 1)
	require.ErrorIs(t, err, domain.ErrTransferPending)
	assert.NotErrorIs(t, err, domain.ErrTransferFailed)
	assert.Equal(t, domain.EventWithdrawed, ev.Kind)

	// the unconfirmed leg is never sent again
	c, err := uc.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.True(t, c.Withdrawn)
	_, err = uc.Withdraw(ctx, alice, 1)
	assert.ErrorIs(t, err, domain.ErrAlreadyWithdrawn)
}

func TestFundPendingPull(t *testing.T) {
	oracle := mocks.NewMockOracle(t)
	stable := mocks.NewMockStableToken(t)
	volatile := mocks.NewMockVolatileAsset(t)
	uc := NewFundraiseUseCase(memory.NewLedgerStore(), price.NewConverter(oracle), stable, volatile, vault, discard())
	ctx := context.Background()

	_, err := uc.CreateFundraise(ctx, alice, "Lol", usd(t, "100"))
	require.NoError(t, err)

	unconfirmed := fmt.Errorf("%w: 0xabc: context deadline exceeded", domain.ErrTransferPending)
	stable.EXPECT().TransferFrom(mock.Anything, bob, vault, usd(t, "10")).Return(unconfirmed).Once()

	ev, err := uc.Fund(ctx, bob, 1, usd(t, "10"), "")
	require.ErrorIs(t, err, domain.ErrTransferPending)
	assert.Equal(t, domain.EventFunded, ev.Kind)

	c, err := uc.GetCampaign(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, usd(t, "10"), c.TotalStable)
}

func TestWithdrawStablePayoutFailure(t *testing.T) {
	oracle := mocks.NewMockOracle(t)
	stable := mocks.NewMockStableToken(t)
	volatile := mocks.NewMockVolatileAsset(t)
	uc := NewFundraiseUseCase(memory.NewLedgerStore(), price.NewConverter(oracle), stable, volatile, vault, discard())

	oracle.EXPECT().Price(mock.Anything).Return(usd(t, "1800"), true, nil)
	stable.EXPECT().TransferFrom(mock.Anything, bob, vault, usd(t, "100")).Return(nil).Once()
	stable.EXPECT().Transfer(mock.Anything, alice, usd(t, "100")).Return(errors.New("reverted")).Once()

	_, err := uc.CreateFundraise(context.Background(), alice, "Lol", usd(t, "100"))
	require.NoError(t, err)
	_, err = uc.Fund(context.Background(), bob, 1, usd(t, "100"), "")
	require.NoError(t, err)

	_, err = uc.Withdraw(context.Background(), alice, 1)
	assert.ErrorIs(t, err, domain.ErrTransferFailed)
	c, err := uc.GetCampaign(context.Background(), 1)
	require.NoError(t, err)
	assert.False(t, c.Withdrawn)
	assert.False(t, c.StablePaidOut)
	assert.Equal(t, domain.StatusActive, c.Status())
}

// TestConcurrentFunding ensures totals equal the sum of successful
// contributions no matter how calls on different campaigns interleave.
func TestConcurrentFunding(t *testing.T) {
	f := newFixture(t)
	for i := 0; i < 3; i++ {
		_, err := f.uc.CreateFundraise(context.Background(), alice, "x", usd(t, "1000"))
		require.NoError(t, err)
	}

	const perCampaign = 20
	f.book.Mint(custody.Stable, bob, usd(t, "1000"))
	f.book.Approve(bob, usd(t, "1000"))

	amount := usd(t, "1.5")
	var wg sync.WaitGroup
	for id := int64(1); id <= 3; id++ {
		for i := 0; i < perCampaign; i++ {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				_, _ = f.uc.Fund(context.Background(), bob, id, amount, "")
			}(id)
		}
	}
	wg.Wait()

	for id := int64(1); id <= 3; id++ {
		c, err := f.uc.GetCampaign(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, usd(t, "30"), c.TotalStable, "campaign %d", id)
	}
	assert.Equal(t, usd(t, "90"), f.book.Balance(custody.Stable, vault))
}

func TestPriceAccessors(t *testing.T) {
	f := newFixture(t)
	f.oracle.EXPECT().Price(mock.Anything).Return(usd(t, "1800"), true, nil)

	p, err := f.uc.EthPrice(context.Background())
	require.NoError(t, err)
	assert.Equal(t, usd(t, "1800"), p)

	v, err := f.uc.ConvertEthToUsd(context.Background(), eth(t, "1"))
	require.NoError(t, err)
	assert.Equal(t, usd(t, "1800"), v)
}
