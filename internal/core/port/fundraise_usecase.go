package port

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"

	"fundraise-ledger/internal/core/domain"
)

// FundraiseUseCase defines the operations exposed by the ledger. This is the
// primary port into the application domain; the HTTP adapter depends on it
// and mocks are generated from it for testing.
type FundraiseUseCase interface {
	// CreateFundraise opens a campaign owned by caller and returns its
	// FundraiseCreated event. target must be positive.
	CreateFundraise(ctx context.Context, caller common.Address, name string, target *uint256.Int) (domain.Event, error)

	// Fund records a contribution of stableAmount stable units pulled from
	// caller plus whatever volatile value the deposit ref carries. An empty
	// ref contributes no volatile value.
	Fund(ctx context.Context, caller common.Address, id int64, stableAmount *uint256.Int, deposit string) (domain.Event, error)

	// Withdraw pays out all raised funds to the creator once the fiat value
	// of the totals reaches the target.
	Withdraw(ctx context.Context, caller common.Address, id int64) (domain.Event, error)

	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	GetCreatorCampaigns(ctx context.Context, creator common.Address) ([]int64, error)
	Events(ctx context.Context, id int64) ([]domain.Event, error)

	// EthPrice returns the current fiat price of one volatile unit.
	EthPrice(ctx context.Context) (*uint256.Int, error)
	// ConvertEthToUsd converts a volatile amount into fiat units.
	ConvertEthToUsd(ctx context.Context, amount *uint256.Int) (*uint256.Int, error)
}
