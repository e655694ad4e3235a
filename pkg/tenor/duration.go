package tenor

import (
	"time"

	"tenor/core"
)

// Duration returns maturity-now as a 32-bit second count. Pre-maturity
// operations fault with ErrMatured once the pool has expired.
func Duration(maturity int64, now time.Time) (uint32, error) {
	d := maturity - now.Unix()
	if d <= 0 {
		return 0, core.ErrMatured
	}
	if d > int64(^uint32(0)) {
		return 0, core.ErrDurationOverflow
	}

	return uint32(d), nil
}

// CheckMatured faults with ErrNotMatured when a post-maturity operation
// arrives before the pool has expired.
func CheckMatured(maturity int64, now time.Time) error {
	if now.Unix() < maturity {
		return core.ErrNotMatured
	}

	return nil
}
