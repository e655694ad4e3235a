package tenor

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestLendFee(t *testing.T) {
	base := new(uint256.Int).Lsh(uint256.NewInt(1), FeeBaseShift)

	// d*totalFee = 100*40 = 4000; the 2^40 principal makes the ceiling exact
	out, err := LendFee(100, base, 30, 10)
	require.Nil(t, err)
	require.Equal(t, uint64(4000), out.Total.Uint64())
	require.Equal(t, uint64(3000), out.Fee.Uint64())
	require.Equal(t, uint64(1000), out.Protocol.Uint64())
}

func TestLendFeeRounding(t *testing.T) {
	// gross rounds up to 2, so one unit of fee accrues entirely to protocol
	out, err := LendFee(100, uint256.NewInt(1), 30, 10)
	require.Nil(t, err)
	require.Equal(t, uint64(1), out.Total.Uint64())
	require.Equal(t, uint64(0), out.Fee.Uint64())
	require.Equal(t, uint64(1), out.Protocol.Uint64())
}

func TestBorrowFee(t *testing.T) {
	denominator := feeDenominator(100, 40)

	out, err := BorrowFee(100, denominator, 30, 10)
	require.Nil(t, err)
	require.Equal(t, uint64(4000), out.Total.Uint64())
	require.Equal(t, uint64(3000), out.Fee.Uint64())
	require.Equal(t, uint64(1000), out.Protocol.Uint64())
}

func TestFeeSplitExact(t *testing.T) {
	for _, principal := range []uint64{1, 7, 999, 123456789} {
		out, err := BorrowFee(86400, uint256.NewInt(principal), 17, 5)
		require.Nil(t, err)

		sum := new(uint256.Int).Add(out.Fee, out.Protocol)
		require.Equal(t, out.Total, sum, "split must not leak a remainder")
	}
}

func TestFeeDisabled(t *testing.T) {
	out, err := LendFee(100, uint256.NewInt(1000), 0, 0)
	require.Nil(t, err)
	require.Equal(t, true, out.Total.IsZero())
}
