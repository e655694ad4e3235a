package fullmath

import (
	"math/big"

	"tenor/core"

	"github.com/holiman/uint256"
)

// MulDiv computes floor(a*b/denominator). The product is carried through a
// double-width intermediate, so a*b overflowing 256 bits only faults when
// the quotient itself does not fit.
func MulDiv(a, b, denominator *uint256.Int) (*uint256.Int, error) {
	if denominator.IsZero() {
		return nil, core.ErrDividedByZero
	}

	p, overflow := new(uint256.Int).MulOverflow(a, b)
	if !overflow {
		return p.Div(p, denominator), nil
	}

	wide := new(big.Int).Mul(a.ToBig(), b.ToBig())
	wide.Quo(wide, denominator.ToBig())

	out, overflow := uint256.FromBig(wide)
	if overflow {
		return nil, core.ErrAmountOverflow
	}

	return out, nil
}

// MulDivUp computes ceil(a*b/denominator)
func MulDivUp(a, b, denominator *uint256.Int) (*uint256.Int, error) {
	q, err := MulDiv(a, b, denominator)
	if err != nil {
		return nil, err
	}

	rem := new(uint256.Int).MulMod(a, b, denominator)
	if rem.IsZero() {
		return q, nil
	}

	q, overflow := q.AddOverflow(q, one)
	if overflow {
		return nil, core.ErrAmountOverflow
	}

	return q, nil
}

// ShiftRightUp computes ceil(v / 2^bits) without intermediate overflow
func ShiftRightUp(v *uint256.Int, bits uint) *uint256.Int {
	out := new(uint256.Int).Rsh(v, bits)

	back := new(uint256.Int).Lsh(out, bits)
	if !back.Eq(v) {
		out.AddUint64(out, 1)
	}

	return out
}

// CheckedMul computes a*b, faulting on 256-bit overflow
func CheckedMul(a, b *uint256.Int) (*uint256.Int, error) {
	p, overflow := new(uint256.Int).MulOverflow(a, b)
	if overflow {
		return nil, core.ErrAmountOverflow
	}

	return p, nil
}

// CheckedAdd computes a+b, faulting on 256-bit overflow
func CheckedAdd(a, b *uint256.Int) (*uint256.Int, error) {
	sum, overflow := new(uint256.Int).AddOverflow(a, b)
	if overflow {
		return nil, core.ErrAmountOverflow
	}

	return sum, nil
}

// CheckedSub computes a-b, faulting when b exceeds a
func CheckedSub(a, b *uint256.Int) (*uint256.Int, error) {
	if b.Gt(a) {
		return nil, core.ErrAmountUnderflow
	}

	return new(uint256.Int).Sub(a, b), nil
}

var one = uint256.NewInt(1)
