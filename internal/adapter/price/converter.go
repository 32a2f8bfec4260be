package price

import (
	"context"
	"fmt"

	"github.com/holiman/uint256"

	"fundraise-ledger/internal/core/domain"
	"fundraise-ledger/internal/core/port"
	"fundraise-ledger/internal/metrics"
)

// Converter implements port.PriceConverter on top of an oracle. It keeps no
// state between calls: every conversion reads a fresh price, so a cached
// value can never unlock a withdrawal.
type Converter struct {
	oracle port.Oracle
	unit   *uint256.Int
}

// NewConverter returns a converter for an 18-decimal volatile asset.
func NewConverter(oracle port.Oracle) *Converter {
	return &Converter{oracle: oracle, unit: domain.Pow10(domain.VolatileDecimals)}
}

// AssetPrice returns the fiat price of one whole volatile unit. Oracle
// failures, stale readings and zero prices all yield ErrOracleUnavailable.
func (c *Converter) AssetPrice(ctx context.Context) (*uint256.Int, error) {
	p, fresh, err := c.oracle.Price(ctx)
	switch {
	case err != nil:
		metrics.OracleReadCounter.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("%w: %v", domain.ErrOracleUnavailable, err)
	case !fresh:
		metrics.OracleReadCounter.WithLabelValues("stale").Inc()
		return nil, fmt.Errorf("%w: stale price", domain.ErrOracleUnavailable)
	case p == nil || p.IsZero():
		metrics.OracleReadCounter.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: non-positive price", domain.ErrOracleUnavailable)
	}
	metrics.OracleReadCounter.WithLabelValues(metrics.OutcomeOK).Inc()
	return p.Clone(), nil
}

// Convert returns amount * price / 10^18. The product is computed before the
// division and an overflow fails instead of wrapping.
func (c *Converter) Convert(ctx context.Context, amount *uint256.Int) (*uint256.Int, error) {
	p, err := c.AssetPrice(ctx)
	if err != nil {
		return nil, err
	}
	product, overflow := new(uint256.Int).MulOverflow(amount, p)
	if overflow {
		return nil, fmt.Errorf("%w: %s * %s", domain.ErrArithmeticOverflow, amount.Dec(), p.Dec())
	}
	return product.Div(product, c.unit), nil
}
