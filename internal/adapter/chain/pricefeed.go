package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"fundraise-ledger/internal/core/domain"
)

const aggregatorV3ABI = `[
	{"type":"function","name":"decimals","stateMutability":"view","inputs":[],
	 "outputs":[{"name":"","type":"uint8"}]},
	{"type":"function","name":"latestRoundData","stateMutability":"view","inputs":[],
	 "outputs":[
		{"name":"roundId","type":"uint80"},
		{"name":"answer","type":"int256"},
		{"name":"startedAt","type":"uint256"},
		{"name":"updatedAt","type":"uint256"},
		{"name":"answeredInRound","type":"uint80"}]}
]`

var ErrNonPositiveAnswer = errors.New("price feed answer is not positive")

// PriceFeed reads a Chainlink AggregatorV3 feed and reports the answer with
// domain.FiatDecimals decimals. It implements port.Oracle.
type PriceFeed struct {
	contract *bind.BoundContract
	maxAge   time.Duration
	now      func() time.Time
}

// NewPriceFeed binds the aggregator at address. Readings older than maxAge
// are reported as stale; zero disables the age check.
func NewPriceFeed(caller bind.ContractCaller, address common.Address, maxAge time.Duration) (*PriceFeed, error) {
	parsed, err := abi.JSON(strings.NewReader(aggregatorV3ABI))
	if err != nil {
		return nil, err
	}
	return &PriceFeed{
		contract: bind.NewBoundContract(address, parsed, caller, nil, nil),
		maxAge:   maxAge,
		now:      time.Now,
	}, nil
}

// Price returns the latest answer and whether it is fresh.
func (f *PriceFeed) Price(ctx context.Context) (*uint256.Int, bool, error) {
	opts := &bind.CallOpts{Context: ctx}

	var out []interface{}
	if err := f.contract.Call(opts, &out, "decimals"); err != nil {
		return nil, false, fmt.Errorf("decimals: %w", err)
	}
	decimals := *abi.ConvertType(out[0], new(uint8)).(*uint8)

	out = nil
	if err := f.contract.Call(opts, &out, "latestRoundData"); err != nil {
		return nil, false, fmt.Errorf("latest round: %w", err)
	}
	roundID := abi.ConvertType(out[0], new(big.Int)).(*big.Int)
	answer := abi.ConvertType(out[1], new(big.Int)).(*big.Int)
	updatedAt := abi.ConvertType(out[3], new(big.Int)).(*big.Int)
	answeredInRound := abi.ConvertType(out[4], new(big.Int)).(*big.Int)

	if answer.Sign() <= 0 {
		return nil, false, fmt.Errorf("%w: %s", ErrNonPositiveAnswer, answer)
	}
	price, err := scale(answer, int(decimals), domain.FiatDecimals)
	if err != nil {
		return nil, false, err
	}
	return price, f.fresh(roundID, updatedAt, answeredInRound), nil
}

func (f *PriceFeed) fresh(roundID, updatedAt, answeredInRound *big.Int) bool {
	if updatedAt.Sign() == 0 || answeredInRound.Cmp(roundID) < 0 {
		return false
	}
	if f.maxAge <= 0 {
		return true
	}
	if !updatedAt.IsInt64() {
		return false
	}
	return f.now().Sub(time.Unix(updatedAt.Int64(), 0)) <= f.maxAge
}

// scale moves v from one fixed point precision to another, truncating.
func scale(v *big.Int, from, to int) (*uint256.Int, error) {
	out := new(big.Int).Set(v)
	switch {
	case from > to:
		out.Quo(out, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(from-to)), nil))
	case from < to:
		out.Mul(out, new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(to-from)), nil))
	}
	price, overflow := uint256.FromBig(out)
	if overflow {
		return nil, fmt.Errorf("%w: price %s", domain.ErrArithmeticOverflow, v)
	}
	return price, nil
}
