package pool

import (
	"context"

	"tenor/core"
	"tenor/pkg/fullmath"
	"tenor/pkg/tenor"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/holiman/uint256"
	"golang.org/x/sync/errgroup"
)

// Burn redeems liquidity after maturity for the LP's junior share of the
// reserves plus the LP's accrued trading fees.
func (s *poolService) Burn(ctx context.Context, params core.BurnParams) (*core.Tokens, error) {
	log := logger.FromContext(ctx).WithField("operation", "burn")

	if err := requireRecipients(params.AssetTo, params.CollateralTo); err != nil {
		return nil, err
	}
	if err := requireAmounts(params.LiquidityIn); err != nil {
		return nil, err
	}

	if err := tenor.CheckMatured(params.Maturity, s.clock()); err != nil {
		return nil, err
	}

	pool, err := s.findPool(ctx, params.Maturity)
	if err != nil {
		return nil, err
	}

	liquidity, err := s.findLiquidity(ctx, params.Maturity, params.Caller)
	if err != nil {
		return nil, err
	}
	if params.LiquidityIn.Gt(&liquidity.Balance.Int) {
		return nil, core.ErrAmountUnderflow
	}

	outcome, err := tenor.Burn(pool, &params.LiquidityIn.Int)
	if err != nil {
		return nil, err
	}

	balance, err := fullmath.CheckedSub(&liquidity.Balance.Int, &params.LiquidityIn.Int)
	if err != nil {
		return nil, err
	}
	liquidity.Balance = core.UintFrom(balance)

	assetOut, err := fullmath.CheckedAdd(outcome.AssetOut, outcome.FeeOut)
	if err != nil {
		return nil, err
	}

	if err := s.applyBurn(pool, outcome, &params.LiquidityIn.Int); err != nil {
		return nil, err
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			return err
		}
		if err := s.saveLiquidity(ctx, tx, liquidity); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("liquidity_in", params.LiquidityIn)
		extra.Put("fee_out", core.UintFrom(outcome.FeeOut))
		if err := s.journal(ctx, tx, core.ActionBurn, params.Maturity, params.Caller, core.UintFrom(assetOut), core.UintFrom(outcome.CollateralOut), extra); err != nil {
			return err
		}

		var g errgroup.Group
		if !assetOut.IsZero() {
			g.Go(func() error {
				return s.custodian.TransferAsset(ctx, params.AssetTo, core.UintFrom(assetOut))
			})
		}
		if !outcome.CollateralOut.IsZero() {
			g.Go(func() error {
				return s.custodian.TransferCollateral(ctx, params.CollateralTo, core.UintFrom(outcome.CollateralOut))
			})
		}

		return g.Wait()
	}); err != nil {
		return nil, err
	}

	log.WithField("maturity", params.Maturity).Infoln("burned", params.LiquidityIn)

	return &core.Tokens{
		Asset:      core.UintFrom(assetOut),
		Collateral: core.UintFrom(outcome.CollateralOut),
	}, nil
}

func (s *poolService) applyBurn(pool *core.Pool, outcome *tenor.BurnOutcome, liquidityIn *uint256.Int) error {
	totalLiquidity, err := fullmath.CheckedSub(&pool.TotalLiquidity.Int, liquidityIn)
	if err != nil {
		return err
	}
	pool.TotalLiquidity = core.UintFrom(totalLiquidity)

	// the fee share pays out of FeeStored, the surplus share out of the
	// settlement reserve
	feeStored, err := fullmath.CheckedSub(&pool.FeeStored.Int, outcome.FeeOut)
	if err != nil {
		return err
	}
	pool.FeeStored = core.UintFrom(feeStored)

	assetReserve, err := fullmath.CheckedSub(&pool.AssetReserve.Int, outcome.AssetOut)
	if err != nil {
		return err
	}
	pool.AssetReserve = core.UintFrom(assetReserve)

	collateralReserve, err := fullmath.CheckedSub(&pool.CollateralReserve.Int, outcome.CollateralOut)
	if err != nil {
		return err
	}
	pool.CollateralReserve = core.UintFrom(collateralReserve)

	return nil
}
