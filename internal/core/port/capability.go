package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Oracle reports the fiat price (6 decimals) of one whole unit of the volatile
// asset. fresh is false when the reading is older than the oracle's staleness
// threshold.
type Oracle interface {
	Price(ctx context.Context) (price *uint256.Int, fresh bool, err error)
}

// StableToken moves the stable token.
type StableToken interface {
	// TransferFrom pulls amount from an account that approved the custody.
	TransferFrom(ctx context.Context, from, to common.Address, amount *uint256.Int) error
	// Transfer sends amount from the custody to an account.
	Transfer(ctx context.Context, to common.Address, amount *uint256.Int) error
}

// VolatileAsset moves the volatile native asset.
type VolatileAsset interface {
	// Receive verifies that the deposit identified by ref was sent by from to
	// the custody and returns the amount actually received.
	Receive(ctx context.Context, from common.Address, ref string) (*uint256.Int, error)
	// Transfer sends amount from the custody to an account.
	Transfer(ctx context.Context, to common.Address, amount *uint256.Int) error
}

// PriceConverter converts volatile amounts into the fiat accounting unit.
type PriceConverter interface {
	AssetPrice(ctx context.Context) (*uint256.Int, error)
	Convert(ctx context.Context, volatileAmount *uint256.Int) (*uint256.Int, error)
}
