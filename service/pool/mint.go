package pool

import (
	"context"

	"tenor/core"
	"tenor/pkg/fullmath"
	"tenor/pkg/id"
	"tenor/pkg/tenor"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/holiman/uint256"
)

// Mint provides liquidity into the maturity pool. The provider deposits
// principal plus collateral, receives liquidity shares and takes on a due.
func (s *poolService) Mint(ctx context.Context, params core.MintParams) (*core.MintResult, error) {
	log := logger.FromContext(ctx).WithField("operation", "mint")

	if err := requireRecipients(params.LiquidityTo, params.DueTo); err != nil {
		return nil, err
	}
	if err := requireAmounts(params.XIncrease, params.YIncrease, params.ZIncrease); err != nil {
		return nil, err
	}
	if params.Callback == nil {
		return nil, core.ErrZeroRecipient
	}

	duration, err := tenor.Duration(params.Maturity, s.clock())
	if err != nil {
		return nil, err
	}

	pool, created, err := s.findOrInitPool(ctx, params.Maturity)
	if err != nil {
		return nil, err
	}

	outcome, err := tenor.Mint(pool, duration, &params.XIncrease.Int, &params.YIncrease.Int, &params.ZIncrease.Int)
	if err != nil {
		return nil, err
	}

	block, err := s.currentBlock(ctx)
	if err != nil {
		return nil, err
	}

	assetIn := &params.XIncrease.Int

	liquidity, err := s.findLiquidity(ctx, params.Maturity, params.LiquidityTo)
	if err != nil {
		return nil, err
	}
	balance, err := fullmath.CheckedAdd(&liquidity.Balance.Int, outcome.LiquidityOut)
	if err != nil {
		return nil, err
	}
	liquidity.Balance = core.UintFrom(balance)

	index, err := s.dues.CountByOwner(ctx, params.Maturity, params.DueTo)
	if err != nil {
		return nil, err
	}
	due := core.Due{
		Maturity:   params.Maturity,
		Owner:      params.DueTo,
		DueIndex:   index,
		Debt:       core.UintFrom(outcome.Debt),
		Collateral: core.UintFrom(outcome.Collateral),
		StartBlock: block,
	}

	if err := s.applyMint(pool, outcome, assetIn); err != nil {
		return nil, err
	}

	assetBefore, err := s.custodian.AssetBalance(ctx)
	if err != nil {
		return nil, err
	}
	collateralBefore, err := s.custodian.CollateralBalance(ctx)
	if err != nil {
		return nil, err
	}

	if err := params.Callback.TenorMint(ctx, params.Maturity, params.XIncrease, due.Collateral, params.CallbackData); err != nil {
		return nil, err
	}
	if err := s.verifyAssetDelivered(ctx, assetBefore, assetIn); err != nil {
		return nil, err
	}
	if err := s.verifyCollateralDelivered(ctx, collateralBefore, outcome.Collateral); err != nil {
		return nil, err
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.savePool(ctx, tx, pool, created); err != nil {
			return err
		}
		if err := s.saveLiquidity(ctx, tx, liquidity); err != nil {
			return err
		}
		if err := s.dues.Save(ctx, tx, &due); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("liquidity_out", core.UintFrom(outcome.LiquidityOut))
		extra.Put("due_index", index)
		extra.Put("debt", due.Debt)
		return s.journal(ctx, tx, core.ActionMint, params.Maturity, params.Caller, params.XIncrease, due.Collateral, extra)
	}); err != nil {
		return nil, err
	}

	log.WithField("maturity", params.Maturity).Infoln("minted", outcome.LiquidityOut)

	return &core.MintResult{
		AssetIn:      params.XIncrease,
		LiquidityOut: core.UintFrom(outcome.LiquidityOut),
		DueIndex:     index,
		Due:          due,
	}, nil
}

func (s *poolService) applyMint(pool *core.Pool, outcome *tenor.MintOutcome, assetIn *uint256.Int) error {
	pool.X = core.UintFrom(outcome.NewX)
	pool.Y = core.UintFrom(outcome.NewY)
	pool.Z = core.UintFrom(outcome.NewZ)

	totalLiquidity, err := fullmath.CheckedAdd(&pool.TotalLiquidity.Int, outcome.LiquidityOut)
	if err != nil {
		return err
	}
	pool.TotalLiquidity = core.UintFrom(totalLiquidity)

	assetReserve, err := fullmath.CheckedAdd(&pool.AssetReserve.Int, assetIn)
	if err != nil {
		return err
	}
	pool.AssetReserve = core.UintFrom(assetReserve)

	collateralReserve, err := fullmath.CheckedAdd(&pool.CollateralReserve.Int, outcome.Collateral)
	if err != nil {
		return err
	}
	pool.CollateralReserve = core.UintFrom(collateralReserve)

	totalDebt, err := fullmath.CheckedAdd(&pool.TotalDebtCreated.Int, outcome.Debt)
	if err != nil {
		return err
	}
	if totalDebt, err = fullmath.U120(totalDebt); err != nil {
		return err
	}
	pool.TotalDebtCreated = core.UintFrom(totalDebt)

	return nil
}

func (s *poolService) journal(ctx context.Context, tx *db.DB, action core.ActionType, maturity int64, caller string, asset, collateral core.Uint, extra core.TransactionExtraData) error {
	t := &core.Transaction{
		TraceID:          id.GenTraceID(),
		Action:           action,
		Maturity:         maturity,
		Caller:           caller,
		AssetAmount:      asset,
		CollateralAmount: collateral,
	}
	t.SetExtraData(extra)

	return s.transactions.Create(ctx, tx, t)
}
