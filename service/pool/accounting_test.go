package pool

import (
	"testing"

	"tenor/core"
	"tenor/pkg/tenor"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestLendKeepsFeesOutOfReserve(t *testing.T) {
	s := &poolService{}

	pool := &core.Pool{
		TotalLiquidity: core.NewUint(1000 << 16),
		AssetReserve:   core.NewUint(1000),
	}
	outcome := &tenor.LendOutcome{
		NewX: uint256.NewInt(1100),
		NewY: uint256.NewInt(9),
		NewZ: uint256.NewInt(50),
	}
	claims := core.Claims{
		BondPrincipal:      core.NewUint(100),
		BondInterest:       core.NewUint(1),
		InsurancePrincipal: core.NewUint(4),
		InsuranceInterest:  core.NewUint(2),
	}
	accrual := &tenor.FeeAccrual{
		Total:    uint256.NewInt(10),
		Fee:      uint256.NewInt(6),
		Protocol: uint256.NewInt(4),
	}

	require.Nil(t, s.applyLend(pool, outcome, claims, uint256.NewInt(100), accrual))

	// only the principal enters the settlement reserve; the lender wired
	// 110 but the fee shares live in their own buckets
	require.Equal(t, uint64(1100), pool.AssetReserve.Uint64())
	require.Equal(t, uint64(6), pool.FeeStored.Uint64())
	require.Equal(t, uint64(100), pool.TotalBondPrincipal.Uint64())
}

func TestBorrowKeepsFeesOutOfReserve(t *testing.T) {
	s := &poolService{}

	pool := &core.Pool{
		TotalLiquidity: core.NewUint(1000 << 16),
		AssetReserve:   core.NewUint(1000),
	}
	outcome := &tenor.BorrowOutcome{
		Debt:       uint256.NewInt(101),
		Collateral: uint256.NewInt(113),
		NewX:       uint256.NewInt(900),
		NewY:       uint256.NewInt(12),
		NewZ:       uint256.NewInt(56),
	}
	accrual := &tenor.FeeAccrual{
		Total:    uint256.NewInt(10),
		Fee:      uint256.NewInt(6),
		Protocol: uint256.NewInt(4),
	}

	require.Nil(t, s.applyBorrow(pool, outcome, uint256.NewInt(100), accrual))

	// the whole principal leaves the reserve: 90 to the borrower, 6 into
	// FeeStored, 4 into the protocol accumulator
	require.Equal(t, uint64(900), pool.AssetReserve.Uint64())
	require.Equal(t, uint64(6), pool.FeeStored.Uint64())
	require.Equal(t, uint64(113), pool.CollateralReserve.Uint64())
	require.Equal(t, uint64(101), pool.TotalDebtCreated.Uint64())
}

func TestBurnPaysEachBucketOnce(t *testing.T) {
	s := &poolService{}

	pool := &core.Pool{
		TotalLiquidity: core.NewUint(1000),
		FeeStored:      core.NewUint(6),
		AssetReserve:   core.NewUint(1001),
	}

	out, err := tenor.Burn(pool, uint256.NewInt(1000))
	require.Nil(t, err)

	// no claims outstanding: the surplus is the whole reserve, and the
	// fee share pays out beside it
	require.Equal(t, uint64(1001), out.AssetOut.Uint64())
	require.Equal(t, uint64(6), out.FeeOut.Uint64())

	require.Nil(t, s.applyBurn(pool, out, uint256.NewInt(1000)))

	// the combined payout of 1007 drains exactly what was custodied
	require.Equal(t, uint64(0), pool.AssetReserve.Uint64())
	require.Equal(t, uint64(0), pool.FeeStored.Uint64())
	require.Equal(t, uint64(0), pool.TotalLiquidity.Uint64())
}
