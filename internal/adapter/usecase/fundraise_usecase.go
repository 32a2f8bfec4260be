package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"fundraise-ledger/internal/core/domain"
	"fundraise-ledger/internal/core/port"
	"fundraise-ledger/internal/metrics"
)

// FundraiseUseCase is the campaign lifecycle engine. It orchestrates the
// ledger store, the price converter and the two transfer capabilities to
// implement port.FundraiseUseCase. Every transfer runs inside a unit of work
// on the store that records it, so a unit either commits with its transfer
// or leaves no trace. A withdrawal pays its two legs in two such units.
type FundraiseUseCase struct {
	store    port.LedgerStore
	prices   port.PriceConverter
	stable   port.StableToken
	volatile port.VolatileAsset

	// custody is the account that holds contributed funds until withdrawal.
	custody common.Address

	logger *slog.Logger
	now    func() time.Time
}

// NewFundraiseUseCase wires the engine. custody receives stable
// contributions pulled with TransferFrom.
func NewFundraiseUseCase(
	store port.LedgerStore,
	prices port.PriceConverter,
	stable port.StableToken,
	volatile port.VolatileAsset,
	custody common.Address,
	logger *slog.Logger,
) *FundraiseUseCase {
	return &FundraiseUseCase{
		store:    store,
		prices:   prices,
		stable:   stable,
		volatile: volatile,
		custody:  custody,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateFundraise allocates the next id, stores an active campaign owned by
// caller, appends it to the creator index and records FundraiseCreated.
func (u *FundraiseUseCase) CreateFundraise(ctx context.Context, caller common.Address, name string, target *uint256.Int) (ev domain.Event, err error) {
	start := time.Now()
	defer func() { metrics.ObserveOperation("create", start, err) }()

	if target == nil || target.IsZero() {
		return domain.Event{}, domain.ErrInvalidTarget
	}

	err = u.store.Atomic(ctx, func(tx port.LedgerTx) error {
		id, err := tx.NextID(ctx)
		if err != nil {
			return err
		}
		now := u.now()
		if err = tx.Insert(ctx, domain.NewCampaign(id, caller, name, target, now)); err != nil {
			return err
		}
		if err = tx.AppendToCreatorIndex(ctx, caller, id); err != nil {
			return err
		}
		ev = domain.FundraiseCreated(id, caller, target, now)
		return tx.AppendEvent(ctx, ev)
	})
	if err != nil {
		return domain.Event{}, fmt.Errorf("create fundraise: %w", err)
	}

	u.logger.Info("fundraise created",
		slog.Int64("id", ev.CampaignID),
		slog.String("creator", caller.Hex()),
		slog.String("target", target.Dec()))
	return ev, nil
}

// Fund credits a contribution. The volatile part is whatever the deposit
// actually carried; the stable part is pulled from caller last, so a failed
// pull rolls back everything staged before it. A pull that was submitted but
// not confirmed keeps the credit and is reported with ErrTransferPending.
func (u *FundraiseUseCase) Fund(ctx context.Context, caller common.Address, id int64, stableAmount *uint256.Int, deposit string) (ev domain.Event, err error) {
	start := time.Now()
	defer func() { metrics.ObserveOperation("fund", start, err) }()

	if stableAmount == nil {
		stableAmount = new(uint256.Int)
	}

	pulled := false
	var pending error
	err = u.store.Atomic(ctx, func(tx port.LedgerTx) error {
		pulled, pending = false, nil
		c, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}
		if c.Closed() {
			return domain.ErrAlreadyWithdrawn
		}

		received := new(uint256.Int)
		if deposit != "" {
			if err = tx.ClaimDeposit(ctx, deposit, id); err != nil {
				return err
			}
			if received, err = u.volatile.Receive(ctx, caller, deposit); err != nil {
				return fmt.Errorf("%w: receive deposit %s: %w", domain.ErrTransferFailed, deposit, err)
			}
			if received == nil {
				received = new(uint256.Int)
			}
		}

		now := u.now()
		err = tx.Update(ctx, id, func(c *domain.Campaign) error {
			if _, overflow := c.TotalStable.AddOverflow(c.TotalStable, stableAmount); overflow {
				return fmt.Errorf("%w: stable total", domain.ErrArithmeticOverflow)
			}
			if _, overflow := c.TotalVolatile.AddOverflow(c.TotalVolatile, received); overflow {
				return fmt.Errorf("%w: volatile total", domain.ErrArithmeticOverflow)
			}
			c.UpdatedAt = now
			return nil
		})
		if err != nil {
			return err
		}
		ev = domain.Funded(id, caller, stableAmount, received, now)
		if err = tx.AppendEvent(ctx, ev); err != nil {
			return err
		}

		if stableAmount.IsZero() {
			return nil
		}
		err = u.stable.TransferFrom(ctx, caller, u.custody, stableAmount)
		switch {
		case errors.Is(err, domain.ErrTransferPending):
			pending = err
		case err != nil:
			return fmt.Errorf("%w: pull stable from %s: %w", domain.ErrTransferFailed, caller.Hex(), err)
		default:
			pulled = true
		}
		return nil
	})
	if err != nil {
		switch {
		case pulled:
			// the commit failed after the tokens moved
			u.refund(ctx, id, caller, stableAmount)
		case pending != nil:
			u.logger.Error("stable pull submitted but not recorded",
				slog.Int64("id", id),
				slog.String("contributor", caller.Hex()),
				slog.String("stable", stableAmount.Dec()),
				slog.Any("transfer", pending),
				slog.Any("error", err))
		}
		return domain.Event{}, fmt.Errorf("fund %d: %w", id, err)
	}

	u.logger.Info("fundraise funded",
		slog.Int64("id", id),
		slog.String("contributor", caller.Hex()),
		slog.String("stable", ev.StableAmount.Dec()),
		slog.String("volatile", ev.VolatileAmount.Dec()))
	if pending != nil {
		u.logger.Warn("stable pull not confirmed",
			slog.Int64("id", id),
			slog.String("contributor", caller.Hex()),
			slog.Any("error", pending))
		return ev, fmt.Errorf("fund %d: %w", id, pending)
	}
	return ev, nil
}

// Withdraw pays the full totals to the creator once their fiat value meets
// the target. Checks run in order: ownership, withdrawn flag, goal. The goal
// check is the only one that reads the oracle.
//
// The stable leg and the volatile leg are paid in two units of work. Each
// unit records its leg together with the transfer, so a leg that left custody
// is never paid again: when the volatile leg fails the campaign stays
// withdrawing and a retry pays only what is still owed.
func (u *FundraiseUseCase) Withdraw(ctx context.Context, caller common.Address, id int64) (ev domain.Event, err error) {
	start := time.Now()
	defer func() { metrics.ObserveOperation("withdraw", start, err) }()

	stablePending, err := u.payStable(ctx, caller, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("withdraw %d: %w", id, err)
	}
	ev, volatilePending, err := u.payVolatile(ctx, caller, id)
	if err != nil {
		return domain.Event{}, fmt.Errorf("withdraw %d: %w", id, err)
	}

	u.logger.Info("fundraise withdrawn",
		slog.Int64("id", id),
		slog.String("stable", ev.StableAmount.Dec()),
		slog.String("volatile", ev.VolatileAmount.Dec()))
	if pending := errors.Join(stablePending, volatilePending); pending != nil {
		u.logger.Warn("withdrawal payout not confirmed",
			slog.Int64("id", id),
			slog.Any("error", pending))
		return ev, fmt.Errorf("withdraw %d: %w", id, pending)
	}
	return ev, nil
}

// payStable runs the withdrawal checks and pays the stable leg. A campaign
// whose stable leg is already recorded skips the goal check and the transfer.
// pending is the unconfirmed transfer, if any; the leg is recorded either way.
func (u *FundraiseUseCase) payStable(ctx context.Context, caller common.Address, id int64) (pending, err error) {
	sent := false
	err = u.store.Atomic(ctx, func(tx port.LedgerTx) error {
		sent, pending = false, nil
		c, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}
		if c.Creator != caller {
			return domain.ErrNotFundraiseOwner
		}
		if c.Withdrawn {
			return domain.ErrAlreadyWithdrawn
		}
		if c.StablePaidOut {
			return nil
		}
		if err = u.checkGoal(ctx, c); err != nil {
			return err
		}

		if err = tx.Update(ctx, id, u.markStablePaid); err != nil {
			return err
		}
		if c.TotalStable.IsZero() {
			return nil
		}
		err = u.stable.Transfer(ctx, caller, c.TotalStable)
		switch {
		case errors.Is(err, domain.ErrTransferPending):
			pending = err
		case err != nil:
			return fmt.Errorf("%w: pay stable to %s: %w", domain.ErrTransferFailed, caller.Hex(), err)
		default:
			sent = true
		}
		return nil
	})
	if err == nil || (!sent && pending == nil) {
		return pending, err
	}

	// the commit failed after the stable leg left custody
	rctx := context.WithoutCancel(ctx)
	rerr := u.store.Atomic(rctx, func(tx port.LedgerTx) error {
		return tx.Update(rctx, id, u.markStablePaid)
	})
	if rerr != nil {
		u.logger.Error("stable payout sent but not recorded",
			slog.Int64("id", id),
			slog.String("creator", caller.Hex()),
			slog.Any("error", errors.Join(err, rerr)))
		return nil, err
	}
	return pending, nil
}

// payVolatile closes the withdrawal: it marks the campaign withdrawn, records
// Withdrawed and pays the volatile leg last.
func (u *FundraiseUseCase) payVolatile(ctx context.Context, caller common.Address, id int64) (ev domain.Event, pending, err error) {
	sent := false
	err = u.store.Atomic(ctx, func(tx port.LedgerTx) error {
		sent, pending = false, nil
		c, err := tx.Get(ctx, id)
		if err != nil {
			return err
		}
		if c.Creator != caller {
			return domain.ErrNotFundraiseOwner
		}
		if c.Withdrawn {
			return domain.ErrAlreadyWithdrawn
		}
		if !c.StablePaidOut {
			return fmt.Errorf("campaign %d: stable leg is not settled", id)
		}

		ev = domain.Withdrawed(id, c.TotalStable, c.TotalVolatile, u.now())
		if err = u.recordWithdrawal(ctx, tx, ev); err != nil {
			return err
		}
		if c.TotalVolatile.IsZero() {
			return nil
		}
		err = u.volatile.Transfer(ctx, caller, c.TotalVolatile)
		switch {
		case errors.Is(err, domain.ErrTransferPending):
			pending = err
		case err != nil:
			return fmt.Errorf("%w: pay volatile to %s: %w", domain.ErrTransferFailed, caller.Hex(), err)
		default:
			sent = true
		}
		return nil
	})
	if err == nil {
		return ev, pending, nil
	}
	if !sent && pending == nil {
		return domain.Event{}, nil, err
	}

	// the commit failed after the volatile leg left custody
	rctx := context.WithoutCancel(ctx)
	rerr := u.store.Atomic(rctx, func(tx port.LedgerTx) error {
		return u.recordWithdrawal(rctx, tx, ev)
	})
	if rerr != nil {
		u.logger.Error("volatile payout sent but not recorded",
			slog.Int64("id", id),
			slog.String("creator", caller.Hex()),
			slog.Any("error", errors.Join(err, rerr)))
		return domain.Event{}, nil, err
	}
	return ev, pending, nil
}

func (u *FundraiseUseCase) checkGoal(ctx context.Context, c *domain.Campaign) error {
	volatileValue, err := u.prices.Convert(ctx, c.TotalVolatile)
	if err != nil {
		return err
	}
	total, overflow := new(uint256.Int).AddOverflow(c.TotalStable, volatileValue)
	if overflow {
		return fmt.Errorf("%w: total value", domain.ErrArithmeticOverflow)
	}
	if total.Lt(c.Target) {
		return fmt.Errorf("%w: raised %s of %s",
			domain.ErrCannotWithdraw,
			domain.FormatUnits(total, domain.FiatDecimals),
			domain.FormatUnits(c.Target, domain.FiatDecimals))
	}
	return nil
}

func (u *FundraiseUseCase) markStablePaid(c *domain.Campaign) error {
	c.StablePaidOut = true
	c.UpdatedAt = u.now()
	return nil
}

func (u *FundraiseUseCase) recordWithdrawal(ctx context.Context, tx port.LedgerTx, ev domain.Event) error {
	err := tx.Update(ctx, ev.CampaignID, func(c *domain.Campaign) error {
		c.Withdrawn = true
		c.UpdatedAt = ev.RecordedAt
		return nil
	})
	if err != nil {
		return err
	}
	return tx.AppendEvent(ctx, ev)
}

// refund returns a stable contribution whose ledger entry failed to commit.
func (u *FundraiseUseCase) refund(ctx context.Context, id int64, to common.Address, amount *uint256.Int) {
	if err := u.stable.Transfer(context.WithoutCancel(ctx), to, amount); err != nil {
		u.logger.Error("stable contribution could not be refunded",
			slog.Int64("id", id),
			slog.String("contributor", to.Hex()),
			slog.String("stable", amount.Dec()),
			slog.Any("error", err))
	}
}

// GetCampaign returns a snapshot of the campaign.
func (u *FundraiseUseCase) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	return u.store.Get(ctx, id)
}

// GetCreatorCampaigns returns the ids created by creator in creation order.
func (u *FundraiseUseCase) GetCreatorCampaigns(ctx context.Context, creator common.Address) ([]int64, error) {
	return u.store.CreatorCampaigns(ctx, creator)
}

// Events returns the campaign's event log.
func (u *FundraiseUseCase) Events(ctx context.Context, id int64) ([]domain.Event, error) {
	return u.store.Events(ctx, id)
}

// EthPrice returns the current volatile asset price in fiat units.
func (u *FundraiseUseCase) EthPrice(ctx context.Context) (*uint256.Int, error) {
	return u.prices.AssetPrice(ctx)
}

// ConvertEthToUsd values amount wei in fiat units at the current price.
func (u *FundraiseUseCase) ConvertEthToUsd(ctx context.Context, amount *uint256.Int) (*uint256.Int, error) {
	return u.prices.Convert(ctx, amount)
}
