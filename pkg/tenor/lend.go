package tenor

import (
	"tenor/core"
	"tenor/pkg/fullmath"

	"github.com/holiman/uint256"
)

// LendOutcome deltas computed by Lend
type LendOutcome struct {
	BondPrincipal      *uint256.Int
	BondInterest       *uint256.Int
	InsurancePrincipal *uint256.Int
	InsuranceInterest  *uint256.Int
	NewX               *uint256.Int
	NewY               *uint256.Int
	NewZ               *uint256.Int
}

// Lend prices a principal deposit against the y and z decreases the lender
// requests. The decreases must not push the implied rate below 1/16 of the
// reference rate, and the constant product must not shrink. Claim amounts
// are owed to the lender and round down.
func Lend(pool *core.Pool, duration uint32, xIncrease, yDecrease, zDecrease *uint256.Int) (*LendOutcome, error) {
	newX, err := fullmath.U112(new(uint256.Int).Add(&pool.X.Int, xIncrease))
	if err != nil {
		return nil, err
	}

	yMin, err := fullmath.MulDiv(xIncrease, &pool.Y.Int, newX)
	if err != nil {
		return nil, err
	}
	yMin.Rsh(yMin, MinRateShift)
	if yDecrease.Lt(yMin) {
		return nil, core.ErrMinRate
	}

	newY, err := fullmath.CheckedSub(&pool.Y.Int, yDecrease)
	if err != nil {
		return nil, err
	}
	newZ, err := fullmath.CheckedSub(&pool.Z.Int, zDecrease)
	if err != nil {
		return nil, err
	}

	if err := CheckConstantProduct(
		&pool.X.Int, &pool.Y.Int, &pool.Z.Int,
		newX, AdjustReserve(newY), AdjustReserve(newZ),
	); err != nil {
		return nil, err
	}

	d := uint256.NewInt(uint64(duration))

	bondPrincipal, err := fullmath.U112(xIncrease)
	if err != nil {
		return nil, err
	}

	interest, err := fullmath.CheckedMul(d, yDecrease)
	if err != nil {
		return nil, err
	}
	bondInterest, err := fullmath.U112(new(uint256.Int).Rsh(interest, InterestShift))
	if err != nil {
		return nil, err
	}

	insurancePrincipal, err := fullmath.MulDiv(&pool.Z.Int, xIncrease, newX)
	if err != nil {
		return nil, err
	}
	if insurancePrincipal, err = fullmath.U112(insurancePrincipal); err != nil {
		return nil, err
	}

	weighted, err := fullmath.CheckedMul(d, zDecrease)
	if err != nil {
		return nil, err
	}
	insuranceInterest, err := fullmath.U112(new(uint256.Int).Rsh(weighted, CollateralShift))
	if err != nil {
		return nil, err
	}

	return &LendOutcome{
		BondPrincipal:      bondPrincipal,
		BondInterest:       bondInterest,
		InsurancePrincipal: insurancePrincipal,
		InsuranceInterest:  insuranceInterest,
		NewX:               newX,
		NewY:               newY,
		NewZ:               newZ,
	}, nil
}
