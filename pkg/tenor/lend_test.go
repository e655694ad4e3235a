package tenor

import (
	"testing"

	"tenor/core"

	"github.com/stretchr/testify/require"
)

func TestLend(t *testing.T) {
	pool := testPool(1000, 1000, 1000, 1000<<16)

	out, err := Lend(pool, 1<<30, u(100), u(5), u(5))
	require.Nil(t, err)

	require.Equal(t, uint64(100), out.BondPrincipal.Uint64())
	// floor(2^30 * 5 / 2^32)
	require.Equal(t, uint64(1), out.BondInterest.Uint64())
	// floor(1000 * 100 / 1100)
	require.Equal(t, uint64(90), out.InsurancePrincipal.Uint64())
	// floor(2^30 * 5 / 2^25)
	require.Equal(t, uint64(160), out.InsuranceInterest.Uint64())

	require.Equal(t, uint64(1100), out.NewX.Uint64())
	require.Equal(t, uint64(995), out.NewY.Uint64())
	require.Equal(t, uint64(995), out.NewZ.Uint64())
}

func TestLendMinRate(t *testing.T) {
	pool := testPool(1000, 1000, 1000, 1000<<16)

	// yMin = floor(100*1000/1100) >> 4 = 5
	_, err := Lend(pool, 1000, u(100), u(5), u(0))
	require.Nil(t, err)

	_, err = Lend(pool, 1000, u(100), u(4), u(0))
	require.Equal(t, core.ErrMinRate, err)
}

func TestLendInvariant(t *testing.T) {
	pool := testPool(1000, 1000, 1000, 1000<<16)

	// 1100 * 800 * 1000 < 1000^3
	_, err := Lend(pool, 1000, u(100), u(200), u(0))
	require.Equal(t, core.ErrInvariant, err)
}
