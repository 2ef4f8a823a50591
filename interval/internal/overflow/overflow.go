// Package overflow provides overflow-checked integer arithmetic.
//
// All functions return the result and an ok flag instead of an error so that
// call sites can chain several operations and report failure once.
package overflow

import "math"

type signed interface {
	~int32 | ~int64
}

// Add returns a + b, reporting whether the sum is representable in T.
func Add[T signed](a, b T) (T, bool) {
	sum := a + b
	if (b > 0 && sum < a) || (b < 0 && sum > a) {
		return 0, false
	}
	return sum, true
}

// Sub returns a - b, reporting whether the difference is representable in T.
func Sub[T signed](a, b T) (T, bool) {
	diff := a - b
	if (b < 0 && diff < a) || (b > 0 && diff > a) {
		return 0, false
	}
	return diff, true
}

// Mul returns a * b, reporting whether the product is representable in T.
func Mul[T signed](a, b T) (T, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// The minimum value has no representable negation, so -1 factors need
	// separate treatment before the division check below.
	if a == -1 {
		if -b == b {
			return 0, false
		}
		return -b, true
	}
	if b == -1 {
		if -a == a {
			return 0, false
		}
		return -a, true
	}
	prod := a * b
	if prod/b != a {
		return 0, false
	}
	return prod, true
}

// Int32 narrows v to int32, reporting whether the value fits.
func Int32(v int64) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}
