package tenor

import (
	"tenor/core"
	"tenor/pkg/fullmath"

	"github.com/holiman/uint256"
)

// BorrowOutcome deltas computed by Borrow
type BorrowOutcome struct {
	Debt       *uint256.Int
	Collateral *uint256.Int
	NewX       *uint256.Int
	NewY       *uint256.Int
	NewZ       *uint256.Int
}

// Borrow prices a principal withdrawal. The y and z increases are bounded
// above by the pre-trade reserve ratios (ceiling), the y increase is
// additionally bounded below by 1/16 of that maximum, and the constant
// product must not shrink. Debt and collateral are owed to the pool and
// round up.
func Borrow(pool *core.Pool, duration uint32, xDecrease, yIncrease, zIncrease *uint256.Int) (*BorrowOutcome, error) {
	if !xDecrease.Lt(&pool.X.Int) {
		return nil, core.ErrInsufficientLiquidity
	}
	newX := new(uint256.Int).Sub(&pool.X.Int, xDecrease)

	yMax, err := fullmath.MulDivUp(xDecrease, &pool.Y.Int, newX)
	if err != nil {
		return nil, err
	}
	if yIncrease.Gt(yMax) {
		return nil, core.ErrMaxRate
	}
	if yIncrease.Lt(fullmath.ShiftRightUp(yMax, MinRateShift)) {
		return nil, core.ErrMinRate
	}

	zMax, err := fullmath.MulDivUp(xDecrease, &pool.Z.Int, newX)
	if err != nil {
		return nil, err
	}
	if zIncrease.Gt(zMax) {
		return nil, core.ErrMaxCollateralFactor
	}

	newY, err := fullmath.U112(new(uint256.Int).Add(&pool.Y.Int, yIncrease))
	if err != nil {
		return nil, err
	}
	newZ, err := fullmath.U112(new(uint256.Int).Add(&pool.Z.Int, zIncrease))
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

	interest, err := fullmath.CheckedMul(d, yIncrease)
	if err != nil {
		return nil, err
	}
	debt, err := fullmath.U112(new(uint256.Int).Add(xDecrease, fullmath.ShiftRightUp(interest, InterestShift)))
	if err != nil {
		return nil, err
	}

	weighted, err := fullmath.CheckedMul(d, zIncrease)
	if err != nil {
		return nil, err
	}
	locked, err := fullmath.MulDivUp(&pool.Z.Int, xDecrease, newX)
	if err != nil {
		return nil, err
	}
	collateral, err := fullmath.U112(new(uint256.Int).Add(fullmath.ShiftRightUp(weighted, CollateralShift), locked))
	if err != nil {
		return nil, err
	}

	return &BorrowOutcome{
		Debt:       debt,
		Collateral: collateral,
		NewX:       newX,
		NewY:       newY,
		NewZ:       newZ,
	}, nil
}
