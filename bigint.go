package datasize

import "math/big"

// The helpers below never modify their arguments.
// Each of them returns a newly allocated integer.

var bigZero = big.NewInt(0)

func bigFromInt64(n int64) *big.Int {
	return big.NewInt(n)
}

func bigCopy(a *big.Int) *big.Int {
	if a == nil {
		return new(big.Int)
	}
	return new(big.Int).Set(a)
}

func bigAdd(a, b *big.Int) *big.Int {
	return new(big.Int).Add(a, b)
}

func bigSub(a, b *big.Int) *big.Int {
	return new(big.Int).Sub(a, b)
}

func bigMul(a, b *big.Int) *big.Int {
	return new(big.Int).Mul(a, b)
}

// bigQuo returns a / b truncated toward zero.
// It panics if b is zero.
func bigQuo(a, b *big.Int) *big.Int {
	return new(big.Int).Quo(a, b)
}

func bigPow(base int64, exp int) *big.Int {
	return new(big.Int).Exp(big.NewInt(base), big.NewInt(int64(exp)), nil)
}

func bigAbs(a *big.Int) *big.Int {
	return new(big.Int).Abs(a)
}

func bigNeg(a *big.Int) *big.Int {
	return new(big.Int).Neg(a)
}
