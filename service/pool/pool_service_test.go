package pool

import (
	"context"
	"testing"

	"tenor/core"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

type fakeCustodian struct {
	asset      core.Uint
	collateral core.Uint
}

func (c *fakeCustodian) AssetBalance(ctx context.Context) (core.Uint, error) {
	return c.asset, nil
}

func (c *fakeCustodian) CollateralBalance(ctx context.Context) (core.Uint, error) {
	return c.collateral, nil
}

func (c *fakeCustodian) TransferAsset(ctx context.Context, recipient string, amount core.Uint) error {
	return nil
}

func (c *fakeCustodian) TransferCollateral(ctx context.Context, recipient string, amount core.Uint) error {
	return nil
}

func TestRequireRecipients(t *testing.T) {
	require.Nil(t, requireRecipients("alice", "bob"))
	require.Equal(t, core.ErrZeroRecipient, requireRecipients("alice", ""))
}

func TestRequireAmounts(t *testing.T) {
	require.Nil(t, requireAmounts(core.NewUint(1)))
	require.Equal(t, core.ErrZeroAmount, requireAmounts(core.NewUint(1), core.NewUint(0)))
}

func TestVerifyDelivered(t *testing.T) {
	ctx := context.Background()
	custodian := &fakeCustodian{asset: core.NewUint(150), collateral: core.NewUint(80)}
	s := &poolService{custodian: custodian}

	require.Nil(t, s.verifyAssetDelivered(ctx, core.NewUint(100), uint256.NewInt(50)))
	require.Equal(t, core.ErrInsufficientFunds,
		s.verifyAssetDelivered(ctx, core.NewUint(100), uint256.NewInt(51)))

	require.Nil(t, s.verifyCollateralDelivered(ctx, core.NewUint(50), uint256.NewInt(30)))
	require.Equal(t, core.ErrInsufficientFunds,
		s.verifyCollateralDelivered(ctx, core.NewUint(50), uint256.NewInt(31)))
}
