package fullmath

import (
	"math"

	"tenor/core"

	"github.com/holiman/uint256"
)

// U112 ensures v fits the 112-bit reserve width
func U112(v *uint256.Int) (*uint256.Int, error) {
	return narrow(v, 112)
}

// U120 ensures v fits the 120-bit debt-accumulator width
func U120(v *uint256.Int) (*uint256.Int, error) {
	return narrow(v, 120)
}

// U128 ensures v fits 128 bits
func U128(v *uint256.Int) (*uint256.Int, error) {
	return narrow(v, 128)
}

func narrow(v *uint256.Int, bits int) (*uint256.Int, error) {
	if v.BitLen() > bits {
		return nil, core.ErrAmountOverflow
	}

	return v, nil
}

// U32 narrows v to a 32-bit duration
func U32(v *uint256.Int) (uint32, error) {
	if !v.IsUint64() || v.Uint64() > math.MaxUint32 {
		return 0, core.ErrDurationOverflow
	}

	return uint32(v.Uint64()), nil
}
