package postgres

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"fundraise-ledger/internal/core/domain"
	"fundraise-ledger/internal/core/port"
)

const uniqueViolation = "23505"

const campaignColumns = `id, creator, name, target, total_stable, total_volatile, stable_paid_out, withdrawn, created_at, updated_at`

// LedgerStore implements port.LedgerStore on PostgreSQL. Each unit of work
// is one serializable transaction; campaign rows touched by a unit are
// locked with SELECT ... FOR UPDATE.
type LedgerStore struct {
	pool *pgxpool.Pool
}

// NewLedgerStore returns a store backed by pool. The schema is created by
// the migrations in db/migrations.
func NewLedgerStore(pool *pgxpool.Pool) *LedgerStore {
	return &LedgerStore{pool: pool}
}

// Atomic runs fn inside a serializable transaction. The transaction commits
// only when fn returns nil; a failed commit is reported to the caller.
func (r *LedgerStore) Atomic(ctx context.Context, fn func(port.LedgerTx) error) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.Serializable})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			return
		}
		err = tx.Commit(ctx)
	}()

	return fn(&ledgerTx{tx: tx})
}

// Get returns the committed state of campaign id.
func (r *LedgerStore) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	return scanCampaign(row, id)
}

// CreatorCampaigns returns the creator's campaign ids in creation order.
func (r *LedgerStore) CreatorCampaigns(ctx context.Context, creator common.Address) ([]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT campaign_id FROM creator_campaigns WHERE creator = $1 ORDER BY position`,
		creator.Hex())
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int64])
	if err != nil {
		return nil, err
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

// Events returns the event log of campaign id in recording order.
func (r *LedgerStore) Events(ctx context.Context, id int64) ([]domain.Event, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM campaigns WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}

	rows, err := r.pool.Query(ctx, `
        SELECT id, campaign_id, kind, account, target, stable_amount, volatile_amount, recorded_at
        FROM campaign_events
        WHERE campaign_id = $1
        ORDER BY seq`, id)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Event, error) {
		var (
			ev                       domain.Event
			kind                     string
			account                  *string
			target, stable, volatile pgtype.Numeric
		)
		err := row.Scan(&ev.ID, &ev.CampaignID, &kind, &account, &target, &stable, &volatile, &ev.RecordedAt)
		if err != nil {
			return ev, err
		}
		ev.Kind = domain.EventKind(kind)
		if account != nil {
			ev.Account = common.HexToAddress(*account)
		}
		if ev.Target, err = fromNumeric(target); err != nil {
			return ev, err
		}
		if ev.StableAmount, err = fromNumeric(stable); err != nil {
			return ev, err
		}
		if ev.VolatileAmount, err = fromNumeric(volatile); err != nil {
			return ev, err
		}
		return ev, nil
	})
}

// ledgerTx is the port.LedgerTx view of an open transaction.
type ledgerTx struct {
	tx pgx.Tx
}

func (t *ledgerTx) NextID(ctx context.Context) (int64, error) {
	var id int64
	err := t.tx.QueryRow(ctx,
		`UPDATE ledger_counters SET value = value + 1 WHERE name = 'campaign' RETURNING value`).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, errors.New("campaign counter is missing, run migrations")
	}
	return id, err
}

func (t *ledgerTx) Insert(ctx context.Context, c *domain.Campaign) error {
	_, err := t.tx.Exec(ctx, `
        INSERT INTO campaigns (`+campaignColumns+`)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID,
		c.Creator.Hex(),
		c.Name,
		toNumeric(c.Target),
		toNumeric(c.TotalStable),
		toNumeric(c.TotalVolatile),
		c.StablePaidOut,
		c.Withdrawn,
		c.CreatedAt,
		c.UpdatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("campaign %d: %w", c.ID, domain.ErrDuplicateID)
	}
	return err
}

func (t *ledgerTx) Get(ctx context.Context, id int64) (*domain.Campaign, error) {
	row := t.tx.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1 FOR UPDATE`, id)
	return scanCampaign(row, id)
}

func (t *ledgerTx) Update(ctx context.Context, id int64, mutate func(*domain.Campaign) error) error {
	c, err := t.Get(ctx, id)
	if err != nil {
		return err
	}
	if err = mutate(c); err != nil {
		return err
	}
	_, err = t.tx.Exec(ctx, `
        UPDATE campaigns
        SET total_stable = $2, total_volatile = $3, stable_paid_out = $4, withdrawn = $5, updated_at = $6
        WHERE id = $1`,
		id,
		toNumeric(c.TotalStable),
		toNumeric(c.TotalVolatile),
		c.StablePaidOut,
		c.Withdrawn,
		c.UpdatedAt,
	)
	return err
}

func (t *ledgerTx) AppendToCreatorIndex(ctx context.Context, creator common.Address, id int64) error {
	_, err := t.tx.Exec(ctx, `
        INSERT INTO creator_campaigns (creator, position, campaign_id)
        SELECT $1, COALESCE(MAX(position), 0) + 1, $2
        FROM creator_campaigns
        WHERE creator = $1`,
		creator.Hex(), id)
	return err
}

func (t *ledgerTx) ClaimDeposit(ctx context.Context, ref string, id int64) error {
	tag, err := t.tx.Exec(ctx, `
        INSERT INTO claimed_deposits (ref, campaign_id)
        VALUES ($1, $2)
        ON CONFLICT (ref) DO NOTHING`,
		ref, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("deposit %s: %w", ref, domain.ErrDepositClaimed)
	}
	return nil
}

func (t *ledgerTx) AppendEvent(ctx context.Context, ev domain.Event) error {
	var account *string
	if ev.Account != (common.Address{}) {
		hex := ev.Account.Hex()
		account = &hex
	}
	_, err := t.tx.Exec(ctx, `
        INSERT INTO campaign_events (id, campaign_id, kind, account, target, stable_amount, volatile_amount, recorded_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ev.ID,
		ev.CampaignID,
		string(ev.Kind),
		account,
		toNumeric(ev.Target),
		toNumeric(ev.StableAmount),
		toNumeric(ev.VolatileAmount),
		ev.RecordedAt,
	)
	return err
}

func scanCampaign(row pgx.Row, id int64) (*domain.Campaign, error) {
	var (
		c                        domain.Campaign
		creator                  string
		target, stable, volatile pgtype.Numeric
	)
	err := row.Scan(&c.ID, &creator, &c.Name, &target, &stable, &volatile, &c.StablePaidOut, &c.Withdrawn, &c.CreatedAt, &c.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("campaign %d: %w", id, domain.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}

	c.Creator = common.HexToAddress(creator)
	if c.Target, err = fromNumeric(target); err != nil {
		return nil, err
	}
	if c.TotalStable, err = fromNumeric(stable); err != nil {
		return nil, err
	}
	if c.TotalVolatile, err = fromNumeric(volatile); err != nil {
		return nil, err
	}
	return &c, nil
}

// toNumeric encodes an amount for a NUMERIC(78,0) column. nil becomes NULL.
func toNumeric(v *uint256.Int) pgtype.Numeric {
	if v == nil {
		return pgtype.Numeric{}
	}
	return pgtype.Numeric{Int: v.ToBig(), Exp: 0, Valid: true}
}

// fromNumeric decodes an integral NUMERIC. NULL decodes to nil.
func fromNumeric(n pgtype.Numeric) (*uint256.Int, error) {
	if !n.Valid {
		return nil, nil
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite || n.Exp < 0 {
		return nil, fmt.Errorf("amount is not a non-negative integer")
	}
	v := new(big.Int)
	if n.Int != nil {
		v.Set(n.Int)
	}
	if n.Exp > 0 {
		v.Mul(v, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n.Exp)), nil))
	}
	out, overflow := uint256.FromBig(v)
	if overflow || v.Sign() < 0 {
		return nil, fmt.Errorf("%w: stored amount %s", domain.ErrArithmeticOverflow, v.String())
	}
	return out, nil
}
