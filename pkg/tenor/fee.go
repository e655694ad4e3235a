package tenor

import (
	"tenor/pkg/fullmath"

	"github.com/holiman/uint256"
)

// FeeAccrual the total fee charged by one lend or borrow, already split
// between the LP share (feeStored) and the protocol share. The two shares
// sum to the total exactly; the split never leaks a remainder.
type FeeAccrual struct {
	Total    *uint256.Int
	Fee      *uint256.Int
	Protocol *uint256.Int
}

// feeDenominator d*totalFee + BASE
func feeDenominator(duration uint32, totalFee uint64) *uint256.Int {
	n := new(uint256.Int).Mul(uint256.NewInt(uint64(duration)), uint256.NewInt(totalFee))
	return n.Add(n, FeeBase)
}

// LendFee accrues the fee on a lend: the lender deposits
// ceil(xIncrease*(d*totalFee+BASE)/BASE) while the pool only grows by
// xIncrease; the difference is the fee.
func LendFee(duration uint32, xIncrease *uint256.Int, fee, protocolFee uint64) (*FeeAccrual, error) {
	totalFee := fee + protocolFee
	if totalFee == 0 {
		return zeroAccrual(), nil
	}

	gross, err := fullmath.MulDivUp(xIncrease, feeDenominator(duration, totalFee), FeeBase)
	if err != nil {
		return nil, err
	}

	total, err := fullmath.CheckedSub(gross, xIncrease)
	if err != nil {
		return nil, err
	}

	return splitFee(total, fee, protocolFee)
}

// BorrowFee accrues the fee on a borrow: the borrower only receives
// floor(xIncrease*BASE/(d*totalFee+BASE)) of the principal decrease; the
// retained difference is the fee.
func BorrowFee(duration uint32, xDecrease *uint256.Int, fee, protocolFee uint64) (*FeeAccrual, error) {
	totalFee := fee + protocolFee
	if totalFee == 0 {
		return zeroAccrual(), nil
	}

	net, err := fullmath.MulDiv(xDecrease, FeeBase, feeDenominator(duration, totalFee))
	if err != nil {
		return nil, err
	}

	total, err := fullmath.CheckedSub(xDecrease, net)
	if err != nil {
		return nil, err
	}

	return splitFee(total, fee, protocolFee)
}

// splitFee LP share floors, protocol share takes the remainder
func splitFee(total *uint256.Int, fee, protocolFee uint64) (*FeeAccrual, error) {
	lp, err := fullmath.MulDiv(total, uint256.NewInt(fee), uint256.NewInt(fee+protocolFee))
	if err != nil {
		return nil, err
	}

	protocol := new(uint256.Int).Sub(total, lp)

	return &FeeAccrual{Total: total, Fee: lp, Protocol: protocol}, nil
}

func zeroAccrual() *FeeAccrual {
	return &FeeAccrual{
		Total:    new(uint256.Int),
		Fee:      new(uint256.Int),
		Protocol: new(uint256.Int),
	}
}
