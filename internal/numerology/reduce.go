package numerology

import "github.com/solmira/arquetipo/pkg/types"

// Master numbers halt master-aware reduction early.
const (
	MasterIntuition = 11
	MasterBuilder   = 22
	MasterHealer    = 33
)

// IsMaster reports whether n is one of the master numbers 11, 22, 33.
func IsMaster(n int) bool {
	return n == MasterIntuition || n == MasterBuilder || n == MasterHealer
}

// digitSum sums the decimal digits of a non-negative integer.
func digitSum(n int) int {
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}
	return sum
}

// ReduceWithMasters repeatedly replaces n with the sum of its decimal
// digits until it is a single digit or a master number. The result is
// always in {1..9, 11, 22, 33}. Returns ErrInvalidNumber for n <= 0.
func ReduceWithMasters(n int) (int, error) {
	if n <= 0 {
		return 0, types.ErrInvalidNumber
	}
	for n >= 10 && !IsMaster(n) {
		n = digitSum(n)
	}
	return n, nil
}

// ReduceFully reduces n to a single digit in {1..9}, ignoring master
// numbers entirely. Returns ErrInvalidNumber for n <= 0.
func ReduceFully(n int) (int, error) {
	if n <= 0 {
		return 0, types.ErrInvalidNumber
	}
	for n >= 10 {
		n = digitSum(n)
	}
	return n, nil
}
