package token

import (
	cosmath "cosmossdk.io/math"
	"github.com/pkg/errors"

	"github.com/code-payments/ixkit/pkg/solana"
)

// The smallest positive decimal amount is 10^-18, so any non-zero amount
// scaled by more than 37 decimals exceeds u64.
const maxScaleDecimals = 37

// ToBaseUnits scales a decimal amount such as "1.5" into the integer base
// units of a mint with the given decimals.
//
// Amounts with more fractional digits than the mint supports are rejected
// instead of rounded.
func ToBaseUnits(amount string, decimals uint8) (cosmath.Int, error) {
	value, err := cosmath.LegacyNewDecFromStr(amount)
	if err != nil {
		return cosmath.Int{}, errors.Wrapf(solana.ErrArgumentOutOfRange, "invalid amount %q: %v", amount, err)
	}
	if value.IsNegative() {
		return cosmath.Int{}, errors.Wrapf(solana.ErrArgumentOutOfRange, "negative amount %q", amount)
	}

	if value.IsZero() {
		return cosmath.ZeroInt(), nil
	}
	if decimals > maxScaleDecimals {
		return cosmath.Int{}, errors.Wrapf(solana.ErrArgumentOutOfRange, "amount %q overflows u64 at %d decimals", amount, decimals)
	}

	scale := cosmath.LegacyNewDecFromInt(cosmath.NewIntWithDecimal(1, int(decimals)))
	scaled := value.Mul(scale)
	if !scaled.IsInteger() {
		return cosmath.Int{}, errors.Wrapf(solana.ErrArgumentOutOfRange, "amount %q has more than %d decimals", amount, decimals)
	}

	units := scaled.TruncateInt()
	if !units.IsUint64() {
		return cosmath.Int{}, errors.Wrapf(solana.ErrArgumentOutOfRange, "amount %q overflows u64 at %d decimals", amount, decimals)
	}
	return units, nil
}
