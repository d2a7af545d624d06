package token

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/code-payments/ixkit/pkg/solana"
)

func TestToBaseUnits(t *testing.T) {
	for _, tc := range []struct {
		amount   string
		decimals uint8
		expected uint64
	}{
		{"1.5", 9, 1_500_000_000},
		{"999", 9, 999_000_000_000},
		{"0.000001", 6, 1},
		{"0", 9, 0},
		{"42", 0, 42},
		{"0", 100, 0},
		{"0", 255, 0},
		{"0.000000000000000001", 37, 10_000_000_000_000_000_000},
		{"18446744073.709551615", 9, 18446744073709551615},
	} {
		actual, err := ToBaseUnits(tc.amount, tc.decimals)
		require.NoError(t, err, tc.amount)
		assert.Equal(t, tc.expected, actual.Uint64(), tc.amount)
	}
}

func TestToBaseUnits_Invalid(t *testing.T) {
	for _, tc := range []struct {
		amount   string
		decimals uint8
	}{
		{"-1", 9},
		{"abc", 9},
		{"0.0000001", 6},
		{"18446744073.709551616", 9},
		{"1", 20},
		{"0.000000000000000001", 38},
		{"1", 78},
		{"1", 100},
		{"1", 255},
	} {
		_, err := ToBaseUnits(tc.amount, tc.decimals)
		assert.True(t, errors.Is(err, solana.ErrArgumentOutOfRange), tc.amount)
	}
}
