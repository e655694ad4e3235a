package fullmath

import (
	"tenor/core"

	"github.com/holiman/uint256"
)

// Uint512 is a 512-bit magnitude held as two 256-bit limbs. It exists for
// one purpose: comparing triple products that exceed 256 bits without an
// arbitrary-precision detour.
type Uint512 struct {
	Hi uint256.Int
	Lo uint256.Int
}

// Cmp compares high limbs first, low limbs only when the high limbs match
func (u *Uint512) Cmp(o *Uint512) int {
	if c := u.Hi.Cmp(&o.Hi); c != 0 {
		return c
	}

	return u.Lo.Cmp(&o.Lo)
}

// Mul512 returns the full 512-bit product a*b, built from 128-bit halves so
// no step relies on an integer wider than 256 bits.
func Mul512(a, b *uint256.Int) *Uint512 {
	a0 := new(uint256.Int).And(a, mask128)
	a1 := new(uint256.Int).Rsh(a, 128)
	b0 := new(uint256.Int).And(b, mask128)
	b1 := new(uint256.Int).Rsh(b, 128)

	p0 := new(uint256.Int).Mul(a0, b0)
	p1 := new(uint256.Int).Mul(a0, b1)
	p2 := new(uint256.Int).Mul(a1, b0)
	p3 := new(uint256.Int).Mul(a1, b1)

	mid, midCarry := new(uint256.Int).AddOverflow(p1, p2)
	midLo := new(uint256.Int).Lsh(mid, 128)
	midHi := new(uint256.Int).Rsh(mid, 128)
	if midCarry {
		midHi.Add(midHi, carry128)
	}

	var out Uint512
	lo, loCarry := new(uint256.Int).AddOverflow(p0, midLo)
	out.Lo.Set(lo)

	out.Hi.Add(p3, midHi)
	if loCarry {
		out.Hi.AddUint64(&out.Hi, 1)
	}

	return &out
}

// Prod3 returns the 512-bit product a*b*c, faulting only when the result
// exceeds 512 bits.
func Prod3(a, b, c *uint256.Int) (*Uint512, error) {
	ab := Mul512(a, b)

	low := Mul512(&ab.Lo, c)

	hiProd, overflow := new(uint256.Int).MulOverflow(&ab.Hi, c)
	if overflow {
		return nil, core.ErrAmountOverflow
	}

	var out Uint512
	out.Lo.Set(&low.Lo)

	hi, overflow := new(uint256.Int).AddOverflow(hiProd, &low.Hi)
	if overflow {
		return nil, core.ErrAmountOverflow
	}
	out.Hi.Set(hi)

	return &out, nil
}

var (
	mask128  = new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 128), uint256.NewInt(1))
	carry128 = new(uint256.Int).Lsh(uint256.NewInt(1), 128)
)
