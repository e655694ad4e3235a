package tenor

import (
	"testing"

	"tenor/core"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func u(v uint64) *uint256.Int {
	return uint256.NewInt(v)
}

func testPool(x, y, z, totalLiquidity uint64) *core.Pool {
	return &core.Pool{
		X:              core.NewUint(x),
		Y:              core.NewUint(y),
		Z:              core.NewUint(z),
		TotalLiquidity: core.NewUint(totalLiquidity),
	}
}

func TestMintInitial(t *testing.T) {
	pool := testPool(0, 0, 0, 0)

	out, err := Mint(pool, 86400, u(1000), u(10), u(50))
	require.Nil(t, err)

	// first deposit mints principal scaled by 2^16
	require.Equal(t, uint64(1000<<16), out.LiquidityOut.Uint64())

	// 1000 + ceil(86400*10 / 2^32)
	require.Equal(t, uint64(1001), out.Debt.Uint64())
	// 50 + ceil(86400*50 / 2^25)
	require.Equal(t, uint64(51), out.Collateral.Uint64())

	require.Equal(t, uint64(1000), out.NewX.Uint64())
	require.Equal(t, uint64(10), out.NewY.Uint64())
	require.Equal(t, uint64(50), out.NewZ.Uint64())
}

func TestMintProRata(t *testing.T) {
	pool := testPool(1000, 10, 50, 1000<<16)

	out, err := Mint(pool, 3600, u(100), u(1), u(5))
	require.Nil(t, err)
	require.Equal(t, uint64(100<<16), out.LiquidityOut.Uint64())
}

func TestMintCaps(t *testing.T) {
	pool := testPool(1000, 10, 50, 1000<<16)

	// y delta above the x pro-rata cap
	_, err := Mint(pool, 3600, u(100), u(2), u(5))
	require.Equal(t, core.ErrLiquidityYCap, err)

	// z delta above the x pro-rata cap
	_, err = Mint(pool, 3600, u(100), u(1), u(6))
	require.Equal(t, core.ErrLiquidityZCap, err)
}

func TestMintZeroLiquidity(t *testing.T) {
	pool := testPool(1000, 10, 50, 1000<<16)

	_, err := Mint(pool, 3600, u(100), u(0), u(0))
	require.Equal(t, core.ErrZeroAmount, err)
}
