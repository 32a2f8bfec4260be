package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
)

var (
	ErrDepositReference = errors.New("deposit must be a 0x-prefixed lowercase transaction hash")
	ErrDepositPending   = errors.New("deposit transaction is not mined yet")
	ErrDepositReverted  = errors.New("deposit transaction reverted")
	ErrDepositSender    = errors.New("deposit was not sent by the contributor")
	ErrDepositRecipient = errors.New("deposit was not sent to the custody account")
)

// Native is the chain's native coin as the volatile asset. A contribution is
// a plain value transfer to the custody account, referenced by its hash.
// It implements port.VolatileAsset.
type Native struct {
	custody *Custody
}

func NewNative(custody *Custody) *Native {
	return &Native{custody: custody}
}

// Receive checks that ref names a successful transfer from from to the
// custody account and returns its value. References must be in canonical
// form so one transaction cannot be claimed twice under different spellings.
func (n *Native) Receive(ctx context.Context, from common.Address, ref string) (*uint256.Int, error) {
	hash := common.HexToHash(ref)
	if ref != hash.Hex() {
		return nil, ErrDepositReference
	}

	backend := n.custody.Backend()
	tx, pending, err := backend.TransactionByHash(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("deposit %s: %w", ref, err)
	}
	if pending {
		return nil, ErrDepositPending
	}
	receipt, err := backend.TransactionReceipt(ctx, hash)
	if err != nil {
		return nil, fmt.Errorf("deposit %s receipt: %w", ref, err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, ErrDepositReverted
	}

	sender, err := types.Sender(types.LatestSignerForChainID(tx.ChainId()), tx)
	if err != nil {
		return nil, fmt.Errorf("deposit %s sender: %w", ref, err)
	}
	if sender != from {
		return nil, ErrDepositSender
	}
	if tx.To() == nil || *tx.To() != n.custody.Address() {
		return nil, ErrDepositRecipient
	}

	value, overflow := uint256.FromBig(tx.Value())
	if overflow {
		return nil, fmt.Errorf("deposit %s: value out of range", ref)
	}
	return value, nil
}

// Transfer pays amount wei from the custody account to to.
func (n *Native) Transfer(ctx context.Context, to common.Address, amount *uint256.Int) error {
	return n.custody.sendValue(ctx, to, amount.ToBig())
}
