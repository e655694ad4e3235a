package tenor

import (
	"tenor/core"
	"tenor/pkg/fullmath"

	"github.com/holiman/uint256"
)

// BurnOutcome pro-rata amounts for liquidity removed after maturity
type BurnOutcome struct {
	AssetOut      *uint256.Int
	CollateralOut *uint256.Int
	FeeOut        *uint256.Int
}

// Burn resolves an LP's share after maturity. The LP is junior to every
// claim holder: asset pays out only from the surplus over aggregate bond
// obligations, and collateral only after the activated insurance
// obligations are reserved. All shares round down.
func Burn(pool *core.Pool, liquidityIn *uint256.Int) (*BurnOutcome, error) {
	if liquidityIn.Gt(&pool.TotalLiquidity.Int) {
		return nil, core.ErrAmountUnderflow
	}

	totalBond := new(uint256.Int).Add(&pool.TotalBondPrincipal.Int, &pool.TotalBondInterest.Int)
	totalAsset := &pool.AssetReserve.Int

	assetOut := new(uint256.Int)
	if totalAsset.Gt(totalBond) {
		surplus := new(uint256.Int).Sub(totalAsset, totalBond)
		share, err := fullmath.MulDiv(surplus, liquidityIn, &pool.TotalLiquidity.Int)
		if err != nil {
			return nil, err
		}
		assetOut = share
	}

	feeOut, err := fullmath.MulDiv(&pool.FeeStored.Int, liquidityIn, &pool.TotalLiquidity.Int)
	if err != nil {
		return nil, err
	}

	collateralOut, err := burnCollateral(pool, liquidityIn, totalBond)
	if err != nil {
		return nil, err
	}

	return &BurnOutcome{
		AssetOut:      assetOut,
		CollateralOut: collateralOut,
		FeeOut:        feeOut,
	}, nil
}

func burnCollateral(pool *core.Pool, liquidityIn, totalBond *uint256.Int) (*uint256.Int, error) {
	totalAsset := &pool.AssetReserve.Int
	totalCollateral := &pool.CollateralReserve.Int

	if !totalAsset.Lt(totalBond) {
		return fullmath.MulDiv(totalCollateral, liquidityIn, &pool.TotalLiquidity.Int)
	}

	deficit := new(uint256.Int).Sub(totalBond, totalAsset)
	totalInsurance := new(uint256.Int).Add(&pool.TotalInsurancePrincipal.Int, &pool.TotalInsuranceInterest.Int)

	covered, err := fullmath.CheckedMul(totalCollateral, totalBond)
	if err != nil {
		return nil, err
	}
	reserved, err := fullmath.CheckedMul(deficit, totalInsurance)
	if err != nil {
		return nil, err
	}

	// everything custodied is reserved for insurance claims
	if !covered.Gt(reserved) {
		return new(uint256.Int), nil
	}

	free := new(uint256.Int).Sub(covered, reserved)
	free.Div(free, totalBond)

	return fullmath.MulDiv(free, liquidityIn, &pool.TotalLiquidity.Int)
}
