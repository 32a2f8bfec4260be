package metrics

import (
	"errors"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"

	"fundraise-ledger/internal/core/domain"
)

const (
	Namespace = "fundraise"

	SubsystemLedger = "ledger"
	SubsystemOracle = "oracle"

	LabelOperation = "operation"
	LabelOutcome   = "outcome"

	OutcomeOK = "ok"
)

var (
	OperationCounter = prom.NewCounterVec(
		prom.CounterOpts{
			Namespace: Namespace,
			Subsystem: SubsystemLedger,
			Name:      "operations_total",
			Help:      "Total number of ledger operations by outcome.",
		},
		[]string{LabelOperation, LabelOutcome})
	OperationHistogram = prom.NewHistogramVec(
		prom.HistogramOpts{
			Namespace: Namespace,
			Subsystem: SubsystemLedger,
			Name:      "operation_seconds",
			Help:      "Histogram of ledger operation latency.",
			Buckets:   prom.DefBuckets,
		},
		[]string{LabelOperation})
	OracleReadCounter = prom.NewCounterVec(
		prom.CounterOpts{
			Namespace: Namespace,
			Subsystem: SubsystemOracle,
			Name:      "reads_total",
			Help:      "Total number of oracle price reads by outcome.",
		},
		[]string{LabelOutcome})
)

// Register adds every collector of this package to reg.
func Register(reg prom.Registerer) error {
	for _, c := range []prom.Collector{OperationCounter, OperationHistogram, OracleReadCounter} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveOperation records the outcome and latency of one ledger operation.
func ObserveOperation(operation string, start time.Time, err error) {
	OperationCounter.WithLabelValues(operation, Outcome(err)).Inc()
	OperationHistogram.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}

var outcomes = []struct {
	err   error
	label string
}{
	{domain.ErrNotFound, "not_found"},
	{domain.ErrNotFundraiseOwner, "not_owner"},
	{domain.ErrCannotWithdraw, "cannot_withdraw"},
	{domain.ErrAlreadyWithdrawn, "already_withdrawn"},
	{domain.ErrInvalidTarget, "invalid_target"},
	{domain.ErrTransferPending, "transfer_pending"},
	{domain.ErrTransferFailed, "transfer_failed"},
	{domain.ErrOracleUnavailable, "oracle_unavailable"},
	{domain.ErrArithmeticOverflow, "overflow"},
	{domain.ErrDuplicateID, "duplicate_id"},
}

// Outcome maps err to a bounded label value.
func Outcome(err error) string {
	if err == nil {
		return OutcomeOK
	}
	for _, o := range outcomes {
		if errors.Is(err, o.err) {
			return o.label
		}
	}
	return "error"
}
