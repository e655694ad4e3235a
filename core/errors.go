package core

import "strconv"

// ErrorCode int
type ErrorCode int

const (
	// ErrUnknown unknown
	ErrUnknown ErrorCode = 100

	// ErrZeroRecipient recipient identity is empty
	ErrZeroRecipient ErrorCode = 101
	// ErrZeroAmount requested amount is zero
	ErrZeroAmount ErrorCode = 102
	// ErrMatured pre-maturity operation on an expired pool
	ErrMatured ErrorCode = 103
	// ErrNotMatured post-maturity operation before expiry
	ErrNotMatured ErrorCode = 104
	// ErrLengthMismatch batch array lengths differ
	ErrLengthMismatch ErrorCode = 105
	// ErrPoolNotFound no pool at the given maturity
	ErrPoolNotFound ErrorCode = 106
	// ErrDueNotFound no due at the given index
	ErrDueNotFound ErrorCode = 107
	// ErrInsufficientLiquidity principal decrease not covered by the x pool
	ErrInsufficientLiquidity ErrorCode = 108
	// ErrForbidden caller is not allowed to perform the operation
	ErrForbidden ErrorCode = 109

	// ErrMaxRate implied interest change above the permitted maximum
	ErrMaxRate ErrorCode = 211
	// ErrMaxCollateralFactor collateral-factor change above the permitted maximum
	ErrMaxCollateralFactor ErrorCode = 212
	// ErrMinRate implied interest change below 1/16 of the reference rate
	ErrMinRate ErrorCode = 213
	// ErrLiquidityYCap liquidity from the y delta exceeds the x-pro-rata cap
	ErrLiquidityYCap ErrorCode = 214
	// ErrLiquidityZCap liquidity from the z delta exceeds the x-pro-rata cap
	ErrLiquidityZCap ErrorCode = 215

	// ErrInvariant constant product decreased
	ErrInvariant ErrorCode = 301

	// ErrDividedByZero division by zero
	ErrDividedByZero ErrorCode = 401
	// ErrAmountOverflow value exceeds its fixed bit width
	ErrAmountOverflow ErrorCode = 402
	// ErrAmountUnderflow subtraction below zero
	ErrAmountUnderflow ErrorCode = 403
	// ErrDurationOverflow maturity distance exceeds 32 bits
	ErrDurationOverflow ErrorCode = 404

	// ErrSameBlock due repaid in the block it was created
	ErrSameBlock ErrorCode = 501
	// ErrCollateralNotOwned non-owner repayer requested collateral back
	ErrCollateralNotOwned ErrorCode = 502
	// ErrRatioExceeded collateral out exceeds the due's debt:collateral ratio
	ErrRatioExceeded ErrorCode = 503
	// ErrInsufficientFunds callback did not deliver the required amount
	ErrInsufficientFunds ErrorCode = 504
)

func (e ErrorCode) String() string {
	return "E" + strconv.Itoa(int(e))
}

func (e ErrorCode) Error() string {
	return e.String()
}

// Fault is the stable error kind integrating systems branch on.
func (e ErrorCode) Fault() string {
	switch {
	case e >= 100 && e < 200:
		return "validation"
	case e >= 211 && e <= 215:
		return "rate_bound"
	case e == 301:
		return "invariant"
	case e >= 401 && e < 500:
		return "arithmetic"
	case e == 501:
		return "same_block"
	case e == 502:
		return "authorization"
	case e == 503:
		return "ratio"
	case e == 504:
		return "funding"
	default:
		return "unknown"
	}
}
