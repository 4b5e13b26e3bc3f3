package types

import (
	"fmt"
	"math/big"

	sdkmath "cosmossdk.io/math"
)

// Fixed-point scales. Token amounts carry 18 decimals; rates carry 27. The
// ledger accounts debt in token-unit x RateScale, so a nominal token amount
// is multiplied by RateScale before dividing by the current rate.
var (
	// TokenScale is one token unit.
	TokenScale = sdkmath.NewIntWithDecimal(1, 18)

	// RateScale is one unit of rate precision, and the factor between the
	// token unit and the ledger's internal debt-accounting unit.
	RateScale = sdkmath.NewIntWithDecimal(1, 27)
)

// The ledger takes position deltas as signed 256-bit quantities.
var (
	maxSignedDelta = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(1))
	minSignedDelta = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 255))
)

func inDeltaRange(v *big.Int) bool {
	return v.Cmp(minSignedDelta) >= 0 && v.Cmp(maxSignedDelta) <= 0
}

// CheckDeltaRange fails when x cannot be expressed as a signed ledger delta.
func CheckDeltaRange(x sdkmath.Int) error {
	if !inDeltaRange(x.BigInt()) {
		return fmt.Errorf("amount %s exceeds signed delta range: %w", x, ErrIntOverflow)
	}
	return nil
}

// AddChecked returns a+b, failing instead of wrapping on overflow.
func AddChecked(a, b sdkmath.Int) (sdkmath.Int, error) {
	sum := new(big.Int).Add(a.BigInt(), b.BigInt())
	if !inDeltaRange(sum) {
		return sdkmath.Int{}, fmt.Errorf("add %s %s: %w", a, b, ErrIntOverflow)
	}
	return sdkmath.NewIntFromBigInt(sum), nil
}

// SubChecked returns a-b, failing instead of wrapping on overflow.
func SubChecked(a, b sdkmath.Int) (sdkmath.Int, error) {
	diff := new(big.Int).Sub(a.BigInt(), b.BigInt())
	if !inDeltaRange(diff) {
		return sdkmath.Int{}, fmt.Errorf("sub %s %s: %w", a, b, ErrIntOverflow)
	}
	return sdkmath.NewIntFromBigInt(diff), nil
}

// MulChecked returns a*b, failing instead of wrapping on overflow.
func MulChecked(a, b sdkmath.Int) (sdkmath.Int, error) {
	prod := new(big.Int).Mul(a.BigInt(), b.BigInt())
	if !inDeltaRange(prod) {
		return sdkmath.Int{}, fmt.Errorf("mul %s %s: %w", a, b, ErrIntOverflow)
	}
	return sdkmath.NewIntFromBigInt(prod), nil
}

// ToLedgerDebtScale expresses a nominal token amount in the ledger's
// debt-accounting unit.
func ToLedgerDebtScale(x sdkmath.Int) (sdkmath.Int, error) {
	return MulChecked(x, RateScale)
}

// DivRoundUp divides a by b rounding toward positive infinity. It is used
// only when converting a draw request into a normalized-debt delta, so the
// ledger never under-records owed debt. Repayment conversion deliberately
// uses plain floor division instead; do not unify the two.
func DivRoundUp(a, b sdkmath.Int) (sdkmath.Int, error) {
	if !b.IsPositive() {
		return sdkmath.Int{}, fmt.Errorf("divide by non-positive %s", b)
	}
	if a.IsNegative() {
		return sdkmath.Int{}, fmt.Errorf("dividend %s must not be negative", a)
	}
	num := new(big.Int).Add(a.BigInt(), new(big.Int).Sub(b.BigInt(), big.NewInt(1)))
	return sdkmath.NewIntFromBigInt(num.Quo(num, b.BigInt())), nil
}
