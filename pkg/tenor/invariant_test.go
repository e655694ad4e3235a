package tenor

import (
	"testing"

	"tenor/core"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func TestCheckConstantProduct(t *testing.T) {
	// a flat trade at the margin passes
	err := CheckConstantProduct(u(2), u(3), u(4), u(2), AdjustReserve(u(3)), AdjustReserve(u(4)))
	require.Nil(t, err)

	err = CheckConstantProduct(u(2), u(3), u(4), u(2), AdjustReserve(u(4)), AdjustReserve(u(4)))
	require.Nil(t, err)

	err = CheckConstantProduct(u(2), u(3), u(4), u(2), AdjustReserve(u(2)), AdjustReserve(u(4)))
	require.Equal(t, core.ErrInvariant, err)
}

func TestCheckConstantProductWide(t *testing.T) {
	// full-width reserves force the comparison through both 512-bit limbs
	max112 := new(uint256.Int).Sub(new(uint256.Int).Lsh(uint256.NewInt(1), 112), uint256.NewInt(1))

	err := CheckConstantProduct(max112, max112, max112, max112, AdjustReserve(max112), AdjustReserve(max112))
	require.Nil(t, err)

	smaller := new(uint256.Int).Sub(max112, uint256.NewInt(1))
	err = CheckConstantProduct(max112, max112, max112, max112, AdjustReserve(smaller), AdjustReserve(max112))
	require.Equal(t, core.ErrInvariant, err)
}
