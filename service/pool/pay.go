package pool

import (
	"context"

	"tenor/core"
	"tenor/pkg/fullmath"
	"tenor/pkg/tenor"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
	"github.com/holiman/uint256"
	"github.com/jinzhu/gorm"
)

// Pay repays a batch of dues before maturity, unlocking collateral in
// proportion to the debt settled. Only the due owner may take collateral
// back; third parties may still repay on the owner's behalf.
func (s *poolService) Pay(ctx context.Context, params core.PayParams) (*core.PayResult, error) {
	log := logger.FromContext(ctx).WithField("operation", "pay")

	if err := requireRecipients(params.Owner); err != nil {
		return nil, err
	}
	if len(params.DueIndexes) == 0 ||
		len(params.DueIndexes) != len(params.AssetsIn) ||
		len(params.DueIndexes) != len(params.CollateralsOut) {
		return nil, core.ErrLengthMismatch
	}

	if _, err := tenor.Duration(params.Maturity, s.clock()); err != nil {
		return nil, err
	}

	pool, err := s.findPool(ctx, params.Maturity)
	if err != nil {
		return nil, err
	}

	block, err := s.currentBlock(ctx)
	if err != nil {
		return nil, err
	}

	callerIsOwner := params.Caller == params.Owner

	// a due may appear more than once in the batch; reductions accumulate
	// on a single in-memory row
	loaded := map[int64]*core.Due{}
	totalAssetIn := new(uint256.Int)
	totalCollateralOut := new(uint256.Int)

	for i, index := range params.DueIndexes {
		due, ok := loaded[index]
		if !ok {
			due, err = s.dues.Find(ctx, params.Maturity, params.Owner, index)
			if err != nil {
				if gorm.IsRecordNotFoundError(err) {
					return nil, core.ErrDueNotFound
				}
				return nil, err
			}
			loaded[index] = due
		}

		assetIn := &params.AssetsIn[i].Int
		collateralOut := &params.CollateralsOut[i].Int

		if err := tenor.CheckPay(due, assetIn, collateralOut, block, callerIsOwner); err != nil {
			return nil, err
		}

		due.Debt = core.UintFrom(new(uint256.Int).Sub(&due.Debt.Int, assetIn))
		due.Collateral = core.UintFrom(new(uint256.Int).Sub(&due.Collateral.Int, collateralOut))

		totalAssetIn.Add(totalAssetIn, assetIn)
		totalCollateralOut.Add(totalCollateralOut, collateralOut)
	}

	if !totalCollateralOut.IsZero() {
		if err := requireRecipients(params.CollateralTo); err != nil {
			return nil, err
		}
	}

	if err := s.applyPay(pool, totalAssetIn, totalCollateralOut); err != nil {
		return nil, err
	}

	if !totalAssetIn.IsZero() {
		if params.Callback == nil {
			return nil, core.ErrInsufficientFunds
		}
		assetBefore, err := s.custodian.AssetBalance(ctx)
		if err != nil {
			return nil, err
		}
		if err := params.Callback.TenorPay(ctx, params.Maturity, core.UintFrom(totalAssetIn), params.CallbackData); err != nil {
			return nil, err
		}
		if err := s.verifyAssetDelivered(ctx, assetBefore, totalAssetIn); err != nil {
			return nil, err
		}
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			return err
		}
		for _, due := range loaded {
			if err := s.dues.Update(ctx, tx, due); err != nil {
				return err
			}
		}

		extra := core.NewTransactionExtra()
		extra.Put("owner", params.Owner)
		extra.Put("due_indexes", params.DueIndexes)
		if err := s.journal(ctx, tx, core.ActionPay, params.Maturity, params.Caller, core.UintFrom(totalAssetIn), core.UintFrom(totalCollateralOut), extra); err != nil {
			return err
		}

		if totalCollateralOut.IsZero() {
			return nil
		}

		return s.custodian.TransferCollateral(ctx, params.CollateralTo, core.UintFrom(totalCollateralOut))
	}); err != nil {
		return nil, err
	}

	log.WithField("maturity", params.Maturity).Infoln("paid", totalAssetIn)

	return &core.PayResult{
		AssetIn:       core.UintFrom(totalAssetIn),
		CollateralOut: core.UintFrom(totalCollateralOut),
	}, nil
}

func (s *poolService) applyPay(pool *core.Pool, assetIn, collateralOut *uint256.Int) error {
	assetReserve, err := fullmath.CheckedAdd(&pool.AssetReserve.Int, assetIn)
	if err != nil {
		return err
	}
	pool.AssetReserve = core.UintFrom(assetReserve)

	collateralReserve, err := fullmath.CheckedSub(&pool.CollateralReserve.Int, collateralOut)
	if err != nil {
		return err
	}
	pool.CollateralReserve = core.UintFrom(collateralReserve)

	return nil
}
