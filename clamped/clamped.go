// Package clamped implements saturating 32-bit integer arithmetic. Instead of
// wrapping on overflow, each operation substitutes the result type's extreme
// value and reports the substitution via the boolean return: true means the
// exact result was returned, false means it was clamped. Callers that ignore
// the flag still get a representable value.
package clamped

import "math"

// AddInt32 returns a+b, clamping to MaxInt32 or MinInt32 on overflow,
// depending on the direction of the overflow.
func AddInt32(a, b int32) (int32, bool) {
	if b > 0 && a > math.MaxInt32-b {
		return math.MaxInt32, false
	}
	if b < 0 && a < math.MinInt32-b {
		return math.MinInt32, false
	}
	return a + b, true
}

// AddUint32 returns a+b, clamping to MaxUint32 on overflow.
func AddUint32(a, b uint32) (uint32, bool) {
	c := a + b
	if c < a || c < b {
		return math.MaxUint32, false
	}
	return c, true
}

// Uint64ToUint32 narrows a to 32 bits, clamping to MaxUint32 instead of
// truncating.
func Uint64ToUint32(a uint64) (uint32, bool) {
	if a > math.MaxUint32 {
		return math.MaxUint32, false
	}
	return uint32(a), true
}

// Int64ToInt32 narrows a to 32 bits, clamping to MaxInt32 or MinInt32
// instead of truncating.
func Int64ToInt32(a int64) (int32, bool) {
	if a > math.MaxInt32 {
		return math.MaxInt32, false
	}
	if a < math.MinInt32 {
		return math.MinInt32, false
	}
	return int32(a), true
}

// MulUint32 returns a*b, clamping to MaxUint32 on overflow. The product is
// computed exactly in the 64-bit domain and narrowed with Uint64ToUint32,
// so the two always agree.
func MulUint32(a, b uint32) (uint32, bool) {
	return Uint64ToUint32(uint64(a) * uint64(b))
}

// MulInt32 returns a*b, clamping to MaxInt32 or MinInt32 per the sign of
// the exact product.
func MulInt32(a, b int32) (int32, bool) {
	return Int64ToInt32(int64(a) * int64(b))
}
