package mathx

import (
	"math"
	"math/bits"
)

// CheckedAdd returns a+b and false when the sum does not fit in 64 bits.
func CheckedAdd(a, b uint64) (uint64, bool) {
	sum, carry := bits.Add64(a, b, 0)
	return sum, carry == 0
}

// CheckedMul returns a*b and false when the product does not fit in 64 bits.
func CheckedMul(a, b uint64) (uint64, bool) {
	hi, lo := bits.Mul64(a, b)
	return lo, hi == 0
}

// CheckedPow returns base**exp by square-and-multiply, false on overflow.
func CheckedPow(base uint64, exp uint) (uint64, bool) {
	result := uint64(1)
	var ok bool
	for exp > 0 {
		if exp&1 == 1 {
			if result, ok = CheckedMul(result, base); !ok {
				return 0, false
			}
		}
		exp >>= 1
		if exp > 0 {
			if base, ok = CheckedMul(base, base); !ok {
				return 0, false
			}
		}
	}
	return result, true
}

// CeilDiv returns ceil(n / d).
func CeilDiv(n int, d float64) int {
	return int(math.Ceil(float64(n) / d))
}
