package tenor

import (
	"tenor/core"
	"tenor/pkg/fullmath"

	"github.com/holiman/uint256"
)

// AdjustReserve applies the invariant pre-scaling to a y or z magnitude.
// Callers hand CheckConstantProduct adjusted values so the comparison stays
// exact when fee folding widens them later.
func AdjustReserve(reserve *uint256.Int) *uint256.Int {
	return new(uint256.Int).Lsh(reserve, InvariantShift)
}

// CheckConstantProduct verifies x*y*z has not decreased. Both sides are
// 512-bit products compared limb-wise; equality is a flat trade at the
// margin and passes.
func CheckConstantProduct(oldX, oldY, oldZ, newX, newYAdjusted, newZAdjusted *uint256.Int) error {
	newProd, err := fullmath.Prod3(newYAdjusted, newZAdjusted, newX)
	if err != nil {
		return err
	}

	oldProd, err := fullmath.Prod3(AdjustReserve(oldY), AdjustReserve(oldZ), oldX)
	if err != nil {
		return err
	}

	if newProd.Cmp(oldProd) < 0 {
		return core.ErrInvariant
	}

	return nil
}
