package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fundraise-ledger/internal/core/domain"
)

func TestOutcome(t *testing.T) {
	assert.Equal(t, OutcomeOK, Outcome(nil))
	assert.Equal(t, "not_owner", Outcome(fmt.Errorf("withdraw 1: %w", domain.ErrNotFundraiseOwner)))
	assert.Equal(t, "transfer_failed", Outcome(domain.ErrDepositClaimed))
	assert.Equal(t, "transfer_pending", Outcome(fmt.Errorf("fund 1: %w", domain.ErrTransferPending)))
	assert.Equal(t, "error", Outcome(errors.New("boom")))
}

func TestObserveOperation(t *testing.T) {
	before := testutil.ToFloat64(OperationCounter.WithLabelValues("fund", "cannot_withdraw"))
	ObserveOperation("fund", time.Now(), domain.ErrCannotWithdraw)
	assert.Equal(t, before+1, testutil.ToFloat64(OperationCounter.WithLabelValues("fund", "cannot_withdraw")))
}

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, Register(reg))
	assert.Error(t, Register(reg))
}
