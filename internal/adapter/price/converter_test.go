package price

import (
	"context"
	"errors"
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"fundraise-ledger/internal/core/domain"
	"fundraise-ledger/internal/core/port/mocks"
)

func units(t *testing.T, s string, decimals int) *uint256.Int {
	t.Helper()
	v, err := domain.ParseUnits(s, decimals)
	require.NoError(t, err)
	return v
}

func TestConvert(t *testing.T) {
	oracle := mocks.NewMockOracle(t)
	oracle.EXPECT().Price(mock.Anything).Return(units(t, "1800", 6), true, nil)

	c := NewConverter(oracle)
	got, err := c.Convert(context.Background(), units(t, "0.01", 18))
	require.NoError(t, err)
	assert.Equal(t, units(t, "18", 6).Dec(), got.Dec())
}

func TestConvertKeepsPrecision(t *testing.T) {
	oracle := mocks.NewMockOracle(t)
	// 1234.567891 per unit, 1 wei converts to zero but 3 units keep every digit
	oracle.EXPECT().Price(mock.Anything).Return(units(t, "1234.567891", 6), true, nil)

	c := NewConverter(oracle)
	got, err := c.Convert(context.Background(), units(t, "3", 18))
	require.NoError(t, err)
	assert.Equal(t, "3703.703673", domain.FormatUnits(got, 6))

	got, err = c.Convert(context.Background(), uint256.NewInt(1))
	require.NoError(t, err)
	assert.True(t, got.IsZero())
}

func TestConvertReadsPriceEveryCall(t *testing.T) {
	oracle := mocks.NewMockOracle(t)
	oracle.EXPECT().Price(mock.Anything).Return(units(t, "1800", 6), true, nil).Once()
	oracle.EXPECT().Price(mock.Anything).Return(units(t, "2000", 6), true, nil).Once()

	c := NewConverter(oracle)
	first, err := c.Convert(context.Background(), units(t, "1", 18))
	require.NoError(t, err)
	second, err := c.Convert(context.Background(), units(t, "1", 18))
	require.NoError(t, err)
	assert.Equal(t, "1800.000000", domain.FormatUnits(first, 6))
	assert.Equal(t, "2000.000000", domain.FormatUnits(second, 6))
}

func TestAssetPriceUnavailable(t *testing.T) {
	cases := map[string]struct {
		price *uint256.Int
		fresh bool
		err   error
	}{
		"stale":       {price: uint256.NewInt(1800_000000), fresh: false},
		"oracle down": {err: errors.New("dial tcp: connection refused")},
		"zero":        {price: new(uint256.Int), fresh: true},
		"nil":         {fresh: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			oracle := mocks.NewMockOracle(t)
			oracle.EXPECT().Price(mock.Anything).Return(tc.price, tc.fresh, tc.err)

			c := NewConverter(oracle)
			_, err := c.AssetPrice(context.Background())
			assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
			_, err = c.Convert(context.Background(), uint256.NewInt(1))
			assert.ErrorIs(t, err, domain.ErrOracleUnavailable)
		})
	}
}

func TestConvertOverflow(t *testing.T) {
	oracle := mocks.NewMockOracle(t)
	oracle.EXPECT().Price(mock.Anything).Return(units(t, "1800", 6), true, nil)

	max := new(uint256.Int).SetAllOne()
	_, err := NewConverter(oracle).Convert(context.Background(), max)
	assert.ErrorIs(t, err, domain.ErrArithmeticOverflow)
}
