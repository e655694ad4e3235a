package tenor

import (
	"tenor/core"
	"tenor/pkg/fullmath"

	"github.com/holiman/uint256"
)

// CheckPay validates one repayment against its due. A due cannot be repaid
// in the block it was created, only its owner may take collateral back, and
// the collateral withdrawn must not exceed the due's own debt:collateral
// ratio for the asset repaid.
func CheckPay(due *core.Due, assetIn, collateralOut *uint256.Int, currentBlock int64, callerIsOwner bool) error {
	if due.StartBlock == currentBlock {
		return core.ErrSameBlock
	}

	if !callerIsOwner && !collateralOut.IsZero() {
		return core.ErrCollateralNotOwned
	}

	if assetIn.Gt(&due.Debt.Int) || collateralOut.Gt(&due.Collateral.Int) {
		return core.ErrAmountUnderflow
	}

	paid, err := fullmath.CheckedMul(assetIn, &due.Collateral.Int)
	if err != nil {
		return err
	}
	taken, err := fullmath.CheckedMul(collateralOut, &due.Debt.Int)
	if err != nil {
		return err
	}
	if paid.Lt(taken) {
		return core.ErrRatioExceeded
	}

	return nil
}
