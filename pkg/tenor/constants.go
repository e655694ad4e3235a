// Package tenor holds the pure state-transition math of the fixed-term
// lending market. Nothing in this package mutates persistent state: every
// function maps a pool snapshot and a requested delta to the amounts the
// commit phase applies, with the rounding direction fixed per formula.
// Amounts owed to users round down, amounts users must deposit round up.
package tenor

import "github.com/holiman/uint256"

const (
	// LiquidityShift scales the first principal deposit into shares
	LiquidityShift = 16
	// InterestShift scales duration-weighted y deltas into asset interest
	InterestShift = 32
	// CollateralShift scales duration-weighted z deltas into collateral
	CollateralShift = 25
	// FeeBaseShift 2^40 is the "no fee" base of the per-second fee rate
	FeeBaseShift = 40
	// MinRateShift the minimum-rate guard is 1/16 of the reference rate
	MinRateShift = 4
	// InvariantShift pre-scaling applied to y and z before the constant
	// product comparison
	InvariantShift = 16
)

// FeeBase the fee denominator 2^40
var FeeBase = new(uint256.Int).Lsh(uint256.NewInt(1), FeeBaseShift)
