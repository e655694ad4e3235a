package tenor

import (
	"testing"

	"tenor/core"

	"github.com/stretchr/testify/require"
)

func claims(bp, bi, ip, ii uint64) core.Claims {
	return core.Claims{
		BondPrincipal:      core.NewUint(bp),
		BondInterest:       core.NewUint(bi),
		InsurancePrincipal: core.NewUint(ip),
		InsuranceInterest:  core.NewUint(ii),
	}
}

func TestWithdrawFullCoverage(t *testing.T) {
	pool := maturedPool(500, 400)

	out, err := Withdraw(pool, claims(20, 10, 5, 5))
	require.Nil(t, err)

	require.Equal(t, uint64(30), out.AssetOut.Uint64())
	require.Equal(t, uint64(0), out.CollateralOut.Uint64())
}

func TestWithdrawInterestShortfall(t *testing.T) {
	pool := maturedPool(250, 400)

	out, err := Withdraw(pool, claims(20, 10, 5, 5))
	require.Nil(t, err)

	// principal in full, interest scaled by the 50/100 remainder
	require.Equal(t, uint64(25), out.AssetOut.Uint64())
	// deficit 50 activates insurance: floor(10*50/300)
	require.Equal(t, uint64(1), out.CollateralOut.Uint64())
}

func TestWithdrawPrincipalShortfall(t *testing.T) {
	pool := maturedPool(100, 400)

	out, err := Withdraw(pool, claims(20, 10, 5, 5))
	require.Nil(t, err)

	// floor(20*100/200), interest unpaid
	require.Equal(t, uint64(10), out.AssetOut.Uint64())
}

func TestWithdrawCollateralTiers(t *testing.T) {
	// deficit 200, activated principal 10000, activated all 20000

	// covered 15000: principal pays floor(5*200/300)=3,
	// interest shares the remaining 5000 of 15000
	pool := maturedPool(100, 50)
	out, err := Withdraw(pool, claims(0, 0, 5, 5))
	require.Nil(t, err)
	require.Equal(t, uint64(4), out.CollateralOut.Uint64())

	// covered 9000 cannot reach interest claims at all
	pool = maturedPool(100, 30)
	out, err = Withdraw(pool, claims(0, 0, 5, 5))
	require.Nil(t, err)
	require.Equal(t, uint64(3), out.CollateralOut.Uint64())
}
