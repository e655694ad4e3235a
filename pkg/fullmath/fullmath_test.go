package fullmath

import (
	"testing"

	"tenor/core"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestMulDiv(t *testing.T) {
	out, err := MulDiv(uint256.NewInt(10), uint256.NewInt(10), uint256.NewInt(3))
	require.Nil(t, err)
	require.Equal(t, uint64(33), out.Uint64())

	out, err = MulDivUp(uint256.NewInt(10), uint256.NewInt(10), uint256.NewInt(3))
	require.Nil(t, err)
	require.Equal(t, uint64(34), out.Uint64())

	// exact division rounds neither way
	out, err = MulDivUp(uint256.NewInt(6), uint256.NewInt(4), uint256.NewInt(8))
	require.Nil(t, err)
	require.Equal(t, uint64(3), out.Uint64())

	_, err = MulDiv(uint256.NewInt(1), uint256.NewInt(1), uint256.NewInt(0))
	require.Equal(t, core.ErrDividedByZero, err)
}

func TestMulDivWide(t *testing.T) {
	big := new(uint256.Int).Lsh(uint256.NewInt(1), 200)

	// a*b overflows 256 bits but the quotient fits
	out, err := MulDiv(big, big, big)
	require.Nil(t, err)
	require.Equal(t, big, out)

	// the quotient itself does not fit
	_, err = MulDiv(big, big, uint256.NewInt(1))
	require.Equal(t, core.ErrAmountOverflow, err)
}

func TestShiftRightUp(t *testing.T) {
	require.Equal(t, uint64(2), ShiftRightUp(uint256.NewInt(8), 2).Uint64())
	require.Equal(t, uint64(3), ShiftRightUp(uint256.NewInt(9), 2).Uint64())
	require.Equal(t, uint64(0), ShiftRightUp(uint256.NewInt(0), 5).Uint64())
}

func TestCheckedOps(t *testing.T) {
	max := new(uint256.Int).SetAllOne()

	_, err := CheckedAdd(max, uint256.NewInt(1))
	require.Equal(t, core.ErrAmountOverflow, err)

	_, err = CheckedMul(max, uint256.NewInt(2))
	require.Equal(t, core.ErrAmountOverflow, err)

	_, err = CheckedSub(uint256.NewInt(1), uint256.NewInt(2))
	require.Equal(t, core.ErrAmountUnderflow, err)

	out, err := CheckedSub(uint256.NewInt(5), uint256.NewInt(2))
	require.Nil(t, err)
	require.Equal(t, uint64(3), out.Uint64())
}

func TestNarrow(t *testing.T) {
	edge := new(uint256.Int).Lsh(uint256.NewInt(1), 112)

	_, err := U112(edge)
	require.Equal(t, core.ErrAmountOverflow, err)

	fit := new(uint256.Int).Sub(edge, uint256.NewInt(1))
	out, err := U112(fit)
	require.Nil(t, err)
	require.Equal(t, fit, out)

	_, err = U32(new(uint256.Int).Lsh(uint256.NewInt(1), 32))
	require.Equal(t, core.ErrDurationOverflow, err)

	d, err := U32(uint256.NewInt(123))
	require.Nil(t, err)
	require.Equal(t, uint32(123), d)
}
