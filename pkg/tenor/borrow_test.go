package tenor

import (
	"testing"

	"tenor/core"

	"github.com/stretchr/testify/require"
)

func TestBorrow(t *testing.T) {
	pool := testPool(1000, 1000, 1000, 1000<<16)

	// yMax = zMax = ceil(100*1000/900) = 112
	out, err := Borrow(pool, 1000, u(100), u(112), u(112))
	require.Nil(t, err)

	// 100 + ceil(1000*112 / 2^32)
	require.Equal(t, uint64(101), out.Debt.Uint64())
	// ceil(1000*112 / 2^25) + ceil(1000*100/900)
	require.Equal(t, uint64(113), out.Collateral.Uint64())

	require.Equal(t, uint64(900), out.NewX.Uint64())
	require.Equal(t, uint64(1112), out.NewY.Uint64())
	require.Equal(t, uint64(1112), out.NewZ.Uint64())
}

func TestBorrowBounds(t *testing.T) {
	pool := testPool(1000, 1000, 1000, 1000<<16)

	_, err := Borrow(pool, 1000, u(100), u(113), u(112))
	require.Equal(t, core.ErrMaxRate, err)

	// yMin = ceil(112 / 16) = 7
	_, err = Borrow(pool, 1000, u(100), u(6), u(112))
	require.Equal(t, core.ErrMinRate, err)

	_, err = Borrow(pool, 1000, u(100), u(112), u(113))
	require.Equal(t, core.ErrMaxCollateralFactor, err)

	_, err = Borrow(pool, 1000, u(1000), u(1), u(1))
	require.Equal(t, core.ErrInsufficientLiquidity, err)
}

func TestBorrowInvariant(t *testing.T) {
	pool := testPool(1000, 1000, 1000, 1000<<16)

	// within rate bounds, but 900 * 1007 * 1000 < 1000^3
	_, err := Borrow(pool, 1000, u(100), u(7), u(0))
	require.Equal(t, core.ErrInvariant, err)
}
