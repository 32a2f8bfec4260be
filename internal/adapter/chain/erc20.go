package chain

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
)

const erc20ABI = `[
	{"type":"function","name":"transfer","stateMutability":"nonpayable",
	 "inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]},
	{"type":"function","name":"transferFrom","stateMutability":"nonpayable",
	 "inputs":[{"name":"from","type":"address"},{"name":"to","type":"address"},{"name":"value","type":"uint256"}],
	 "outputs":[{"name":"","type":"bool"}]}
]`

// ERC20 moves the stable token on behalf of the custody account. It
// implements port.StableToken.
type ERC20 struct {
	custody  *Custody
	contract *bind.BoundContract
}

// NewERC20 binds the token contract at address.
func NewERC20(custody *Custody, address common.Address) (*ERC20, error) {
	parsed, err := abi.JSON(strings.NewReader(erc20ABI))
	if err != nil {
		return nil, err
	}
	b := custody.Backend()
	return &ERC20{
		custody:  custody,
		contract: bind.NewBoundContract(address, parsed, b, b, b),
	}, nil
}

// TransferFrom pulls amount from from into to using the allowance from
// granted to the custody account.
func (t *ERC20) TransferFrom(ctx context.Context, from, to common.Address, amount *uint256.Int) error {
	return t.custody.transact(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return t.contract.Transact(opts, "transferFrom", from, to, amount.ToBig())
	})
}

// Transfer sends amount from the custody account to to.
func (t *ERC20) Transfer(ctx context.Context, to common.Address, amount *uint256.Int) error {
	return t.custody.transact(ctx, func(opts *bind.TransactOpts) (*types.Transaction, error) {
		return t.contract.Transact(opts, "transfer", to, amount.ToBig())
	})
}
