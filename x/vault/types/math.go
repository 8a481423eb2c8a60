package types

import (
	"math/big"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/math"
)

var (
	// MaxAmount and MinAmount bound every vault amount to a signed 128-bit integer.
	MaxAmount = math.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1)))
	MinAmount = math.NewIntFromBigInt(new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127)))
)

func checkBounds(op string, v math.Int) (math.Int, error) {
	if v.GT(MaxAmount) || v.LT(MinAmount) {
		return math.Int{}, errorsmod.Wrapf(ErrMathOverflow, "%s result out of range", op)
	}
	return v, nil
}

func checkOperands(op string, a, b math.Int) error {
	if a.IsNil() || b.IsNil() {
		return errorsmod.Wrapf(ErrMathOverflow, "%s on nil operand", op)
	}
	return nil
}

// SafeAdd returns a + b or ErrMathOverflow.
func SafeAdd(a, b math.Int) (math.Int, error) {
	if err := checkOperands("add", a, b); err != nil {
		return math.Int{}, err
	}
	res, err := a.SafeAdd(b)
	if err != nil {
		return math.Int{}, errorsmod.Wrap(ErrMathOverflow, err.Error())
	}
	return checkBounds("add", res)
}

// SafeSub returns a - b or ErrMathOverflow.
func SafeSub(a, b math.Int) (math.Int, error) {
	if err := checkOperands("sub", a, b); err != nil {
		return math.Int{}, err
	}
	res, err := a.SafeSub(b)
	if err != nil {
		return math.Int{}, errorsmod.Wrap(ErrMathOverflow, err.Error())
	}
	return checkBounds("sub", res)
}

// SafeMul returns a * b or ErrMathOverflow.
func SafeMul(a, b math.Int) (math.Int, error) {
	if err := checkOperands("mul", a, b); err != nil {
		return math.Int{}, err
	}
	res, err := a.SafeMul(b)
	if err != nil {
		return math.Int{}, errorsmod.Wrap(ErrMathOverflow, err.Error())
	}
	return checkBounds("mul", res)
}

// SafeQuo returns a / b truncated toward zero, or ErrMathOverflow when b is zero.
func SafeQuo(a, b math.Int) (math.Int, error) {
	if err := checkOperands("quo", a, b); err != nil {
		return math.Int{}, err
	}
	if b.IsZero() {
		return math.Int{}, errorsmod.Wrap(ErrMathOverflow, "division by zero")
	}
	res, err := a.SafeQuo(b)
	if err != nil {
		return math.Int{}, errorsmod.Wrap(ErrMathOverflow, err.Error())
	}
	return checkBounds("quo", res)
}

// SubNonNegative subtracts b from an aggregate total and fails if the total would go negative.
func SubNonNegative(total, b math.Int) (math.Int, error) {
	res, err := SafeSub(total, b)
	if err != nil {
		return math.Int{}, err
	}
	if res.IsNegative() {
		return math.Int{}, errorsmod.Wrapf(ErrMathOverflow, "total %s cannot cover %s", total, b)
	}
	return res, nil
}

// FeeOf computes amount * bps / 10000.
func FeeOf(amount math.Int, bps int64) (math.Int, error) {
	product, err := SafeMul(amount, math.NewInt(bps))
	if err != nil {
		return math.Int{}, err
	}
	return SafeQuo(product, math.NewInt(BasisPoints))
}

// ScaleToAssetDecimals converts an 8-decimal vault amount into the asset's native units.
func ScaleToAssetDecimals(amount math.Int, assetDecimals uint32) (math.Int, error) {
	if assetDecimals <= TokenDecimals {
		return amount, nil
	}
	factor := math.OneInt()
	ten := math.NewInt(10)
	for i := TokenDecimals; i < assetDecimals; i++ {
		var err error
		if factor, err = SafeMul(factor, ten); err != nil {
			return math.Int{}, err
		}
	}
	return SafeMul(amount, factor)
}
