// Package buf holds overflow-safe arithmetic for slot counts and block sizes.
package buf

import (
	"errors"
	"fmt"
	"math"
)

// ErrIndex reports an index outside the live range of a sequence.
var ErrIndex = errors.New("index out of range")

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	// Mixed signs - check against MinInt
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// BlockBytes returns the byte size of count slots of elemSize bytes each.
//
//	n, err := buf.BlockBytes(count, int(unsafe.Sizeof(zero)))
//	if err != nil {
//	    return nil, fmt.Errorf("offheap: %w", err)
//	}
func BlockBytes(count, elemSize int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if elemSize < 0 {
		return 0, fmt.Errorf("negative element size: %d", elemSize)
	}
	total, ok := MulOverflowSafe(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * elemSize=%d", count, elemSize)
	}
	return total, nil
}

// CheckIndex reports whether i addresses one of n live slots.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, len %d", ErrIndex, i, n)
	}
	return nil
}
