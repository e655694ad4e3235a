package tenor

import (
	"tenor/core"
	"tenor/pkg/fullmath"

	"github.com/holiman/uint256"
)

// WithdrawOutcome redemption amounts for a claim holder after maturity
type WithdrawOutcome struct {
	AssetOut      *uint256.Int
	CollateralOut *uint256.Int
}

// Withdraw resolves a claim holder's entitlement with the three-tier
// shortfall logic: full coverage redeems bonds 1:1; partial coverage pays
// principal first and pro-rates interest; deeper shortfalls pro-rate
// principal and activate insurance claims against custodied collateral.
// Every payout rounds down so the sum across all holders never exceeds
// reserves.
func Withdraw(pool *core.Pool, claimsIn core.Claims) (*WithdrawOutcome, error) {
	assetOut, err := withdrawAsset(pool, claimsIn)
	if err != nil {
		return nil, err
	}

	collateralOut, err := withdrawCollateral(pool, claimsIn)
	if err != nil {
		return nil, err
	}

	return &WithdrawOutcome{AssetOut: assetOut, CollateralOut: collateralOut}, nil
}

func withdrawAsset(pool *core.Pool, claimsIn core.Claims) (*uint256.Int, error) {
	totalAsset := &pool.AssetReserve.Int
	totalBondPrincipal := &pool.TotalBondPrincipal.Int
	totalBondInterest := &pool.TotalBondInterest.Int
	totalBond := new(uint256.Int).Add(totalBondPrincipal, totalBondInterest)

	// full coverage
	if !totalAsset.Lt(totalBond) {
		return new(uint256.Int).Add(&claimsIn.BondPrincipal.Int, &claimsIn.BondInterest.Int), nil
	}

	// principal covered, interest pro-rated
	if !totalAsset.Lt(totalBondPrincipal) {
		remaining := new(uint256.Int).Sub(totalAsset, totalBondPrincipal)
		interest, err := fullmath.MulDiv(&claimsIn.BondInterest.Int, remaining, totalBondInterest)
		if err != nil {
			return nil, err
		}
		return interest.Add(interest, &claimsIn.BondPrincipal.Int), nil
	}

	// principal pro-rated, interest unpaid
	return fullmath.MulDiv(&claimsIn.BondPrincipal.Int, totalAsset, totalBondPrincipal)
}

func withdrawCollateral(pool *core.Pool, claimsIn core.Claims) (*uint256.Int, error) {
	totalAsset := &pool.AssetReserve.Int
	totalBond := new(uint256.Int).Add(&pool.TotalBondPrincipal.Int, &pool.TotalBondInterest.Int)

	// no shortfall, insurance stays dormant
	if !totalAsset.Lt(totalBond) {
		return new(uint256.Int), nil
	}

	totalCollateral := &pool.CollateralReserve.Int
	totalInsurancePrincipal := &pool.TotalInsurancePrincipal.Int
	totalInsuranceInterest := &pool.TotalInsuranceInterest.Int
	totalInsurance := new(uint256.Int).Add(totalInsurancePrincipal, totalInsuranceInterest)

	deficit := new(uint256.Int).Sub(totalBond, totalAsset)

	covered, err := fullmath.CheckedMul(totalCollateral, totalBond)
	if err != nil {
		return nil, err
	}
	activatedAll, err := fullmath.CheckedMul(deficit, totalInsurance)
	if err != nil {
		return nil, err
	}

	// collateral covers every activated insurance claim
	if !covered.Lt(activatedAll) {
		in := new(uint256.Int).Add(&claimsIn.InsurancePrincipal.Int, &claimsIn.InsuranceInterest.Int)
		return fullmath.MulDiv(in, deficit, totalBond)
	}

	activatedPrincipal, err := fullmath.CheckedMul(deficit, totalInsurancePrincipal)
	if err != nil {
		return nil, err
	}

	// collateral covers principal insurance; interest insurance shares the rest
	if !covered.Lt(activatedPrincipal) {
		principal, err := fullmath.MulDiv(&claimsIn.InsurancePrincipal.Int, deficit, totalBond)
		if err != nil {
			return nil, err
		}

		remaining := new(uint256.Int).Sub(covered, activatedPrincipal)
		denominator, err := fullmath.CheckedMul(totalInsuranceInterest, totalBond)
		if err != nil {
			return nil, err
		}
		interest, err := fullmath.MulDiv(&claimsIn.InsuranceInterest.Int, remaining, denominator)
		if err != nil {
			return nil, err
		}

		return principal.Add(principal, interest), nil
	}

	// collateral covers neither; principal insurance pro-rates it all
	return fullmath.MulDiv(&claimsIn.InsurancePrincipal.Int, totalCollateral, totalInsurancePrincipal)
}
