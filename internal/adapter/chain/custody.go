package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"fundraise-ledger/internal/core/domain"
)

const (
	valueTransferGas      = 21_000
	defaultReceiptTimeout = 2 * time.Minute
)

// Backend is the node API used by the chain adapters. Both *ethclient.Client
// and the simulated backend client satisfy it.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
}

// Custody is the account holding contributed funds. It signs every outgoing
// transaction; sends are serialized so pending nonces never collide.
type Custody struct {
	backend        Backend
	key            *ecdsa.PrivateKey
	address        common.Address
	chainID        *big.Int
	receiptTimeout time.Duration

	mu sync.Mutex
}

// NewCustody parses the hex encoded private key (with or without 0x). A
// non-positive receiptTimeout selects the default of two minutes.
func NewCustody(backend Backend, keyHex string, chainID int64, receiptTimeout time.Duration) (*Custody, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(keyHex), "0x"))
	if err != nil {
		return nil, fmt.Errorf("custody key: %w", err)
	}
	if chainID <= 0 {
		return nil, errors.New("custody: chain id must be positive")
	}
	if receiptTimeout <= 0 {
		receiptTimeout = defaultReceiptTimeout
	}
	return &Custody{
		backend:        backend,
		key:            key,
		address:        crypto.PubkeyToAddress(key.PublicKey),
		chainID:        big.NewInt(chainID),
		receiptTimeout: receiptTimeout,
	}, nil
}

// Address returns the custody account.
func (c *Custody) Address() common.Address {
	return c.address
}

// Backend returns the node client the custody signs for.
func (c *Custody) Backend() Backend {
	return c.backend
}

// transact signs and submits the transaction built by send, then waits for
// it to be mined successfully.
func (c *Custody) transact(ctx context.Context, send func(opts *bind.TransactOpts) (*types.Transaction, error)) error {
	tx, err := c.submit(func() (*types.Transaction, error) {
		opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
		if err != nil {
			return nil, err
		}
		opts.Context = ctx
		return send(opts)
	})
	if err != nil {
		return err
	}
	return c.wait(ctx, tx)
}

// sendValue transfers wei from custody to to with an EIP-1559 transaction.
func (c *Custody) sendValue(ctx context.Context, to common.Address, amount *big.Int) error {
	tx, err := c.submit(func() (*types.Transaction, error) {
		nonce, err := c.backend.PendingNonceAt(ctx, c.address)
		if err != nil {
			return nil, fmt.Errorf("nonce: %w", err)
		}
		tip, err := c.backend.SuggestGasTipCap(ctx)
		if err != nil {
			return nil, fmt.Errorf("gas tip: %w", err)
		}
		head, err := c.backend.HeaderByNumber(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("head: %w", err)
		}
		if head.BaseFee == nil {
			return nil, errors.New("chain does not support dynamic fee transactions")
		}
		feeCap := new(big.Int).Add(tip, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))

		tx, err := types.SignNewTx(c.key, types.LatestSignerForChainID(c.chainID), &types.DynamicFeeTx{
			ChainID:   c.chainID,
			Nonce:     nonce,
			GasTipCap: tip,
			GasFeeCap: feeCap,
			Gas:       valueTransferGas,
			To:        &to,
			Value:     amount,
		})
		if err != nil {
			return nil, err
		}
		return tx, c.backend.SendTransaction(ctx, tx)
	})
	if err != nil {
		return err
	}
	return c.wait(ctx, tx)
}

func (c *Custody) submit(send func() (*types.Transaction, error)) (*types.Transaction, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return send()
}

// wait blocks until tx is mined or the receipt timeout passes. The caller's
// cancellation does not cut the wait short: once broadcast, tx may still be
// mined, and giving up early is reported as domain.ErrTransferPending, never
// as a failure.
func (c *Custody) wait(ctx context.Context, tx *types.Transaction) error {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.receiptTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(ctx, c.backend, tx)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrTransferPending, tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return fmt.Errorf("transaction %s reverted", tx.Hash().Hex())
	}
	return nil
}
