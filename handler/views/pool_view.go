package views

import (
	"tenor/core"

	"github.com/shopspring/decimal"
)

const secondsPerYear = 31536000

var interestBase = decimal.NewFromInt(1 << 32)

// Pool pool view with human-readable derived rates
type Pool struct {
	core.Pool
	ImpliedAPR       decimal.Decimal `json:"implied_apr"`
	CollateralFactor decimal.Decimal `json:"collateral_factor"`
	Matured          bool            `json:"matured"`
}

// NewPool derives the read-side view of a pool row. The y:x ratio scaled
// down by 2^32 is the per-second interest rate; the z:x ratio is collateral
// required per unit borrowed.
func NewPool(pool *core.Pool, matured bool) Pool {
	view := Pool{Pool: *pool, Matured: matured}

	x := decimal.NewFromBigInt(pool.X.ToBig(), 0)
	if x.IsZero() {
		return view
	}

	y := decimal.NewFromBigInt(pool.Y.ToBig(), 0)
	z := decimal.NewFromBigInt(pool.Z.ToBig(), 0)

	view.ImpliedAPR = y.Mul(decimal.NewFromInt(secondsPerYear)).
		DivRound(x.Mul(interestBase), 12)
	view.CollateralFactor = z.DivRound(x, 12)

	return view
}
