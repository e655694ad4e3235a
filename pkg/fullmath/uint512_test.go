package fullmath

import (
	"testing"

	"tenor/core"

	"github.com/bmizerany/assert"
	"github.com/holiman/uint256"
)

func TestMul512(t *testing.T) {
	small := Mul512(uint256.NewInt(10), uint256.NewInt(20))
	assert.Equal(t, uint64(200), small.Lo.Uint64())
	assert.Equal(t, true, small.Hi.IsZero())

	// 2^255 * 2 carries into the high limb
	carry := Mul512(new(uint256.Int).Lsh(uint256.NewInt(1), 255), uint256.NewInt(2))
	assert.Equal(t, uint64(1), carry.Hi.Uint64())
	assert.Equal(t, true, carry.Lo.IsZero())
}

func TestUint512Cmp(t *testing.T) {
	lo := Uint512{Lo: *new(uint256.Int).SetAllOne()}
	hi := Uint512{Hi: *uint256.NewInt(1)}

	assert.Equal(t, -1, lo.Cmp(&hi))
	assert.Equal(t, 1, hi.Cmp(&lo))
	assert.Equal(t, 0, hi.Cmp(&hi))
}

func TestProd3(t *testing.T) {
	p100 := new(uint256.Int).Lsh(uint256.NewInt(1), 100)

	// 2^300 = 2^44 * 2^256
	out, err := Prod3(p100, p100, p100)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, true, out.Lo.IsZero())
	assert.Equal(t, 0, out.Hi.Cmp(new(uint256.Int).Lsh(uint256.NewInt(1), 44)))

	p200 := new(uint256.Int).Lsh(uint256.NewInt(1), 200)
	_, err = Prod3(p200, p200, p200)
	assert.Equal(t, core.ErrAmountOverflow, err)
}
