package tenor

import (
	"testing"

	"tenor/core"

	"github.com/stretchr/testify/require"
)

func maturedPool(assetReserve, collateralReserve uint64) *core.Pool {
	return &core.Pool{
		TotalLiquidity:          core.NewUint(1000),
		FeeStored:               core.NewUint(100),
		TotalBondPrincipal:      core.NewUint(200),
		TotalBondInterest:       core.NewUint(100),
		TotalInsurancePrincipal: core.NewUint(50),
		TotalInsuranceInterest:  core.NewUint(50),
		AssetReserve:            core.NewUint(assetReserve),
		CollateralReserve:       core.NewUint(collateralReserve),
	}
}

func TestBurnSurplus(t *testing.T) {
	pool := maturedPool(500, 400)

	out, err := Burn(pool, u(250))
	require.Nil(t, err)

	// quarter of the 200 surplus over aggregate bonds
	require.Equal(t, uint64(50), out.AssetOut.Uint64())
	require.Equal(t, uint64(25), out.FeeOut.Uint64())
	require.Equal(t, uint64(100), out.CollateralOut.Uint64())
}

func TestBurnShortfall(t *testing.T) {
	pool := maturedPool(200, 400)

	out, err := Burn(pool, u(250))
	require.Nil(t, err)

	// the whole reserve is owed to bond holders
	require.Equal(t, uint64(0), out.AssetOut.Uint64())
	// free = (400*300 - 100*100) / 300 = 366
	require.Equal(t, uint64(91), out.CollateralOut.Uint64())
}

func TestBurnExhausted(t *testing.T) {
	pool := maturedPool(200, 30)

	out, err := Burn(pool, u(250))
	require.Nil(t, err)

	require.Equal(t, uint64(0), out.AssetOut.Uint64())
	require.Equal(t, uint64(0), out.CollateralOut.Uint64())
	// fees still pay out
	require.Equal(t, uint64(25), out.FeeOut.Uint64())
}

func TestBurnOversized(t *testing.T) {
	pool := maturedPool(500, 400)

	_, err := Burn(pool, u(1001))
	require.Equal(t, core.ErrAmountUnderflow, err)
}

func TestBurnShareConservation(t *testing.T) {
	pool := maturedPool(500, 400)

	assetOut := u(0)
	feeOut := u(0)
	collateralOut := u(0)
	for _, share := range []uint64{333, 333, 334} {
		out, err := Burn(pool, u(share))
		require.Nil(t, err)
		assetOut.Add(assetOut, out.AssetOut)
		feeOut.Add(feeOut, out.FeeOut)
		collateralOut.Add(collateralOut, out.CollateralOut)
	}

	// every holder paid out, the custodied buckets still cover their sources
	require.True(t, assetOut.Uint64() <= 200)
	require.True(t, feeOut.Uint64() <= 100)
	require.True(t, collateralOut.Uint64() <= 400)

	// what remains of the asset buckets covers the aggregate bonds
	remaining := 500 + 100 - assetOut.Uint64() - feeOut.Uint64()
	require.True(t, remaining >= 300)
}

func TestMintBurnRoundTrip(t *testing.T) {
	pool := testPool(0, 0, 0, 0)

	minted, err := Mint(pool, 86400, u(1000), u(10), u(50))
	require.Nil(t, err)

	pool.X = core.UintFrom(minted.NewX)
	pool.Y = core.UintFrom(minted.NewY)
	pool.Z = core.UintFrom(minted.NewZ)
	pool.TotalLiquidity = core.UintFrom(minted.LiquidityOut)
	pool.AssetReserve = core.NewUint(1000)
	pool.CollateralReserve = core.UintFrom(minted.Collateral)

	out, err := Burn(pool, minted.LiquidityOut)
	require.Nil(t, err)

	// with no claims outstanding the sole LP recovers the whole deposit
	require.Equal(t, uint64(1000), out.AssetOut.Uint64())
	require.Equal(t, uint64(0), out.FeeOut.Uint64())
	require.Equal(t, minted.Collateral.Uint64(), out.CollateralOut.Uint64())
}
