package tenor

import (
	"tenor/core"
	"tenor/pkg/fullmath"

	"github.com/holiman/uint256"
)

// MintOutcome deltas computed by Mint, applied by the commit phase
type MintOutcome struct {
	LiquidityOut *uint256.Int
	Debt         *uint256.Int
	Collateral   *uint256.Int
	NewX         *uint256.Int
	NewY         *uint256.Int
	NewZ         *uint256.Int
}

// Mint prices a liquidity provision. On the first deposit into a maturity
// the share supply is the principal scaled by 2^16; afterwards shares are
// the minimum of the y and z pro-rata amounts, each capped by the x
// pro-rata amount. The provider also takes on a due: the duration-weighted
// interest and collateral terms round up because the pool is owed them.
func Mint(pool *core.Pool, duration uint32, xIncrease, yIncrease, zIncrease *uint256.Int) (*MintOutcome, error) {
	liquidityOut, err := mintLiquidity(pool, xIncrease, yIncrease, zIncrease)
	if err != nil {
		return nil, err
	}

	d := uint256.NewInt(uint64(duration))

	interest, err := fullmath.CheckedMul(d, yIncrease)
	if err != nil {
		return nil, err
	}
	debt, err := fullmath.U112(new(uint256.Int).Add(xIncrease, fullmath.ShiftRightUp(interest, InterestShift)))
	if err != nil {
		return nil, err
	}

	weighted, err := fullmath.CheckedMul(d, zIncrease)
	if err != nil {
		return nil, err
	}
	collateral, err := fullmath.U112(new(uint256.Int).Add(zIncrease, fullmath.ShiftRightUp(weighted, CollateralShift)))
	if err != nil {
		return nil, err
	}

	newX, err := fullmath.U112(new(uint256.Int).Add(&pool.X.Int, xIncrease))
	if err != nil {
		return nil, err
	}
	newY, err := fullmath.U112(new(uint256.Int).Add(&pool.Y.Int, yIncrease))
	if err != nil {
		return nil, err
	}
	newZ, err := fullmath.U112(new(uint256.Int).Add(&pool.Z.Int, zIncrease))
	if err != nil {
		return nil, err
	}

	return &MintOutcome{
		LiquidityOut: liquidityOut,
		Debt:         debt,
		Collateral:   collateral,
		NewX:         newX,
		NewY:         newY,
		NewZ:         newZ,
	}, nil
}

func mintLiquidity(pool *core.Pool, xIncrease, yIncrease, zIncrease *uint256.Int) (*uint256.Int, error) {
	if pool.TotalLiquidity.IsZero() {
		return new(uint256.Int).Lsh(xIncrease, LiquidityShift), nil
	}

	cap, err := fullmath.MulDiv(&pool.TotalLiquidity.Int, xIncrease, &pool.X.Int)
	if err != nil {
		return nil, err
	}

	fromY, err := fullmath.MulDiv(&pool.TotalLiquidity.Int, yIncrease, &pool.Y.Int)
	if err != nil {
		return nil, err
	}
	if fromY.Gt(cap) {
		return nil, core.ErrLiquidityYCap
	}

	fromZ, err := fullmath.MulDiv(&pool.TotalLiquidity.Int, zIncrease, &pool.Z.Int)
	if err != nil {
		return nil, err
	}
	if fromZ.Gt(cap) {
		return nil, core.ErrLiquidityZCap
	}

	liquidityOut := fromY
	if fromZ.Lt(fromY) {
		liquidityOut = fromZ
	}
	if liquidityOut.IsZero() {
		return nil, core.ErrZeroAmount
	}

	return liquidityOut, nil
}
