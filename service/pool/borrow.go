package pool

import (
	"context"

	"tenor/core"
	"tenor/pkg/fullmath"
	"tenor/pkg/tenor"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/holiman/uint256"
)

// Borrow withdraws principal against posted collateral, creating a due.
// The net asset sent out is the principal decrease minus the fee retained
// by the pool.
func (s *poolService) Borrow(ctx context.Context, params core.BorrowParams) (*core.BorrowResult, error) {
	log := logger.FromContext(ctx).WithField("operation", "borrow")

	if err := requireRecipients(params.AssetTo, params.DueTo); err != nil {
		return nil, err
	}
	if err := requireAmounts(params.XDecrease, params.YIncrease, params.ZIncrease); err != nil {
		return nil, err
	}
	if params.Callback == nil {
		return nil, core.ErrZeroRecipient
	}

	duration, err := tenor.Duration(params.Maturity, s.clock())
	if err != nil {
		return nil, err
	}

	pool, err := s.findPool(ctx, params.Maturity)
	if err != nil {
		return nil, err
	}

	outcome, err := tenor.Borrow(pool, duration, &params.XDecrease.Int, &params.YIncrease.Int, &params.ZIncrease.Int)
	if err != nil {
		return nil, err
	}

	accrual, err := tenor.BorrowFee(duration, &params.XDecrease.Int, s.cfg.Pair.Fee, s.cfg.Pair.ProtocolFee)
	if err != nil {
		return nil, err
	}

	// the borrower receives the principal decrease net of the whole fee
	assetOut, err := fullmath.CheckedSub(&params.XDecrease.Int, accrual.Total)
	if err != nil {
		return nil, err
	}
	if params.XDecrease.Gt(&pool.AssetReserve.Int) {
		return nil, core.ErrInsufficientLiquidity
	}

	block, err := s.currentBlock(ctx)
	if err != nil {
		return nil, err
	}

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

	if err := s.applyBorrow(pool, outcome, &params.XDecrease.Int, accrual); err != nil {
		return nil, err
	}

	system, err := s.systems.Get(ctx)
	if err != nil {
		return nil, err
	}
	protocolFee, err := fullmath.CheckedAdd(&system.ProtocolFeeStored.Int, accrual.Protocol)
	if err != nil {
		return nil, err
	}
	system.ProtocolFeeStored = core.UintFrom(protocolFee)

	collateralBefore, err := s.custodian.CollateralBalance(ctx)
	if err != nil {
		return nil, err
	}
	if err := params.Callback.TenorBorrow(ctx, params.Maturity, due.Collateral, params.CallbackData); err != nil {
		return nil, err
	}
	if err := s.verifyCollateralDelivered(ctx, collateralBefore, outcome.Collateral); err != nil {
		return nil, err
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			return err
		}
		if err := s.dues.Save(ctx, tx, &due); err != nil {
			return err
		}
		if err := s.systems.Save(ctx, tx, system); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("due_index", index)
		extra.Put("debt", due.Debt)
		extra.Put("fee", core.UintFrom(accrual.Fee))
		extra.Put("protocol_fee", core.UintFrom(accrual.Protocol))
		if err := s.journal(ctx, tx, core.ActionBorrow, params.Maturity, params.Caller, core.UintFrom(assetOut), due.Collateral, extra); err != nil {
			return err
		}

		return s.custodian.TransferAsset(ctx, params.AssetTo, core.UintFrom(assetOut))
	}); err != nil {
		return nil, err
	}

	log.WithField("maturity", params.Maturity).Infoln("borrowed", assetOut)

	return &core.BorrowResult{
		AssetOut: core.UintFrom(assetOut),
		DueIndex: index,
		Due:      due,
	}, nil
}

func (s *poolService) applyBorrow(pool *core.Pool, outcome *tenor.BorrowOutcome, principal *uint256.Int, accrual *tenor.FeeAccrual) error {
	pool.X = core.UintFrom(outcome.NewX)
	pool.Y = core.UintFrom(outcome.NewY)
	pool.Z = core.UintFrom(outcome.NewZ)

	feeStored, err := fullmath.CheckedAdd(&pool.FeeStored.Int, accrual.Fee)
	if err != nil {
		return err
	}
	pool.FeeStored = core.UintFrom(feeStored)

	// the whole principal leaves the settlement reserve; the retained fee
	// shares land in FeeStored and the protocol accumulator instead
	assetReserve, err := fullmath.CheckedSub(&pool.AssetReserve.Int, principal)
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
