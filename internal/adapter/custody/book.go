package custody

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/holiman/uint256"
)

// Asset selects one of the two balances kept by a Book.
type Asset string

const (
	Stable   Asset = "stable"
	Volatile Asset = "volatile"
)

var (
	ErrInsufficientBalance   = errors.New("insufficient balance")
	ErrInsufficientAllowance = errors.New("insufficient allowance")
	ErrUnknownDeposit        = errors.New("unknown deposit")
	ErrDepositSender         = errors.New("deposit sent by another account")
)

type deposit struct {
	from   common.Address
	amount *uint256.Int
}

// Book is an in-process balance sheet for the stable token and the volatile
// asset, with one custody account that may pull approved stable funds. It
// backs both transfer capabilities deterministically.
type Book struct {
	mu         sync.Mutex
	custody    common.Address
	balances   map[Asset]map[common.Address]*uint256.Int
	allowances map[common.Address]*uint256.Int
	deposits   map[string]deposit
}

func NewBook(custody common.Address) *Book {
	return &Book{
		custody: custody,
		balances: map[Asset]map[common.Address]*uint256.Int{
			Stable:   {},
			Volatile: {},
		},
		allowances: make(map[common.Address]*uint256.Int),
		deposits:   make(map[string]deposit),
	}
}

// Custody returns the account holding contributed funds.
func (b *Book) Custody() common.Address {
	return b.custody
}

// Mint credits amount of asset to an account.
func (b *Book) Mint(asset Asset, to common.Address, amount *uint256.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.credit(asset, to, amount)
}

// Approve sets how much stable token the custody may pull from owner.
func (b *Book) Approve(owner common.Address, amount *uint256.Int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.allowances[owner] = amount.Clone()
}

// Allowance returns the stable amount the custody may still pull from owner.
func (b *Book) Allowance(owner common.Address) *uint256.Int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if a, ok := b.allowances[owner]; ok {
		return a.Clone()
	}
	return new(uint256.Int)
}

// Balance returns the account's balance of asset.
func (b *Book) Balance(asset Asset, account common.Address) *uint256.Int {
	b.mu.Lock()
	defer b.mu.Unlock()
	if v, ok := b.balances[asset][account]; ok {
		return v.Clone()
	}
	return new(uint256.Int)
}

// Send moves amount of the volatile asset from an account into the custody and
// returns the deposit reference to attach to a funding call.
func (b *Book) Send(from common.Address, amount *uint256.Int) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err := b.move(Volatile, from, b.custody, amount); err != nil {
		return "", err
	}
	ref := uuid.NewString()
	b.deposits[ref] = deposit{from: from, amount: amount.Clone()}
	return ref, nil
}

// StableToken returns the stable token view of the book.
func (b *Book) StableToken() *StableToken {
	return &StableToken{book: b}
}

// VolatileAsset returns the volatile asset view of the book.
func (b *Book) VolatileAsset() *VolatileAsset {
	return &VolatileAsset{book: b}
}

func (b *Book) credit(asset Asset, to common.Address, amount *uint256.Int) {
	bal, ok := b.balances[asset][to]
	if !ok {
		bal = new(uint256.Int)
		b.balances[asset][to] = bal
	}
	bal.Add(bal, amount)
}

func (b *Book) move(asset Asset, from, to common.Address, amount *uint256.Int) error {
	bal, ok := b.balances[asset][from]
	if !ok || bal.Lt(amount) {
		return fmt.Errorf("%s %s: %w", asset, from.Hex(), ErrInsufficientBalance)
	}
	bal.Sub(bal, amount)
	b.credit(asset, to, amount)
	return nil
}

// StableToken implements port.StableToken against a Book.
type StableToken struct {
	book *Book
}

// TransferFrom pulls amount from an account that approved the custody.
func (t *StableToken) TransferFrom(ctx context.Context, from, to common.Address, amount *uint256.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b := t.book
	b.mu.Lock()
	defer b.mu.Unlock()

	allowance, ok := b.allowances[from]
	if !ok || allowance.Lt(amount) {
		return fmt.Errorf("stable %s: %w", from.Hex(), ErrInsufficientAllowance)
	}
	if err := b.move(Stable, from, to, amount); err != nil {
		return err
	}
	allowance.Sub(allowance, amount)
	return nil
}

// Transfer sends amount from the custody.
func (t *StableToken) Transfer(ctx context.Context, to common.Address, amount *uint256.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b := t.book
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.move(Stable, b.custody, to, amount)
}

// VolatileAsset implements port.VolatileAsset against a Book.
type VolatileAsset struct {
	book *Book
}

// Receive reports how much the deposit ref carried. It does not consume the
// deposit; replay protection belongs to the ledger.
func (v *VolatileAsset) Receive(ctx context.Context, from common.Address, ref string) (*uint256.Int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	b := v.book
	b.mu.Lock()
	defer b.mu.Unlock()

	d, ok := b.deposits[ref]
	if !ok {
		return nil, fmt.Errorf("%s: %w", ref, ErrUnknownDeposit)
	}
	if d.from != from {
		return nil, fmt.Errorf("%s: %w", ref, ErrDepositSender)
	}
	return d.amount.Clone(), nil
}

// Transfer sends amount from the custody.
func (v *VolatileAsset) Transfer(ctx context.Context, to common.Address, amount *uint256.Int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	b := v.book
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.move(Volatile, b.custody, to, amount)
}
