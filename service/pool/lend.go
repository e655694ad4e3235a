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

// Lend deposits principal in exchange for bond and insurance claims.
func (s *poolService) Lend(ctx context.Context, params core.LendParams) (*core.LendResult, error) {
	log := logger.FromContext(ctx).WithField("operation", "lend")

	if err := requireRecipients(params.BondTo, params.InsuranceTo); err != nil {
		return nil, err
	}
	if err := requireAmounts(params.XIncrease, params.YDecrease); err != nil {
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

	outcome, err := tenor.Lend(pool, duration, &params.XIncrease.Int, &params.YDecrease.Int, &params.ZDecrease.Int)
	if err != nil {
		return nil, err
	}

	accrual, err := tenor.LendFee(duration, &params.XIncrease.Int, s.cfg.Pair.Fee, s.cfg.Pair.ProtocolFee)
	if err != nil {
		return nil, err
	}

	// the lender funds the principal increase plus the whole fee
	assetIn, err := fullmath.CheckedAdd(&params.XIncrease.Int, accrual.Total)
	if err != nil {
		return nil, err
	}

	claims := core.Claims{
		BondPrincipal:      core.UintFrom(outcome.BondPrincipal),
		BondInterest:       core.UintFrom(outcome.BondInterest),
		InsurancePrincipal: core.UintFrom(outcome.InsurancePrincipal),
		InsuranceInterest:  core.UintFrom(outcome.InsuranceInterest),
	}

	bondClaim, err := s.findClaim(ctx, params.Maturity, params.BondTo)
	if err != nil {
		return nil, err
	}
	insuranceClaim := bondClaim
	if params.InsuranceTo != params.BondTo {
		if insuranceClaim, err = s.findClaim(ctx, params.Maturity, params.InsuranceTo); err != nil {
			return nil, err
		}
	}

	if err := addClaim(bondClaim, insuranceClaim, claims); err != nil {
		return nil, err
	}

	if err := s.applyLend(pool, outcome, claims, &params.XIncrease.Int, accrual); err != nil {
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

	assetBefore, err := s.custodian.AssetBalance(ctx)
	if err != nil {
		return nil, err
	}
	if err := params.Callback.TenorLend(ctx, params.Maturity, core.UintFrom(assetIn), params.CallbackData); err != nil {
		return nil, err
	}
	if err := s.verifyAssetDelivered(ctx, assetBefore, assetIn); err != nil {
		return nil, err
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			return err
		}
		if err := s.saveClaim(ctx, tx, bondClaim); err != nil {
			return err
		}
		if insuranceClaim != bondClaim {
			if err := s.saveClaim(ctx, tx, insuranceClaim); err != nil {
				return err
			}
		}
		if err := s.systems.Save(ctx, tx, system); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("claims", claims)
		extra.Put("fee", core.UintFrom(accrual.Fee))
		extra.Put("protocol_fee", core.UintFrom(accrual.Protocol))
		return s.journal(ctx, tx, core.ActionLend, params.Maturity, params.Caller, core.UintFrom(assetIn), core.NewUint(0), extra)
	}); err != nil {
		return nil, err
	}

	log.WithField("maturity", params.Maturity).Infoln("lent", assetIn)

	return &core.LendResult{
		AssetIn: core.UintFrom(assetIn),
		Claims:  claims,
	}, nil
}

// addClaim credits the bond legs to the bond recipient and the insurance
// legs to the insurance recipient; they may be the same row.
func addClaim(bondClaim, insuranceClaim *core.Claim, claims core.Claims) error {
	bp, err := fullmath.CheckedAdd(&bondClaim.BondPrincipal.Int, &claims.BondPrincipal.Int)
	if err != nil {
		return err
	}
	bondClaim.BondPrincipal = core.UintFrom(bp)

	bi, err := fullmath.CheckedAdd(&bondClaim.BondInterest.Int, &claims.BondInterest.Int)
	if err != nil {
		return err
	}
	bondClaim.BondInterest = core.UintFrom(bi)

	ip, err := fullmath.CheckedAdd(&insuranceClaim.InsurancePrincipal.Int, &claims.InsurancePrincipal.Int)
	if err != nil {
		return err
	}
	insuranceClaim.InsurancePrincipal = core.UintFrom(ip)

	ii, err := fullmath.CheckedAdd(&insuranceClaim.InsuranceInterest.Int, &claims.InsuranceInterest.Int)
	if err != nil {
		return err
	}
	insuranceClaim.InsuranceInterest = core.UintFrom(ii)

	return nil
}

func (s *poolService) applyLend(pool *core.Pool, outcome *tenor.LendOutcome, claims core.Claims, principal *uint256.Int, accrual *tenor.FeeAccrual) error {
	pool.X = core.UintFrom(outcome.NewX)
	pool.Y = core.UintFrom(outcome.NewY)
	pool.Z = core.UintFrom(outcome.NewZ)

	feeStored, err := fullmath.CheckedAdd(&pool.FeeStored.Int, accrual.Fee)
	if err != nil {
		return err
	}
	pool.FeeStored = core.UintFrom(feeStored)

	// only the principal enters the settlement reserve; the fee shares are
	// custodied under FeeStored and the protocol accumulator
	assetReserve, err := fullmath.CheckedAdd(&pool.AssetReserve.Int, principal)
	if err != nil {
		return err
	}
	pool.AssetReserve = core.UintFrom(assetReserve)

	bp, err := fullmath.CheckedAdd(&pool.TotalBondPrincipal.Int, &claims.BondPrincipal.Int)
	if err != nil {
		return err
	}
	pool.TotalBondPrincipal = core.UintFrom(bp)

	bi, err := fullmath.CheckedAdd(&pool.TotalBondInterest.Int, &claims.BondInterest.Int)
	if err != nil {
		return err
	}
	pool.TotalBondInterest = core.UintFrom(bi)

	ip, err := fullmath.CheckedAdd(&pool.TotalInsurancePrincipal.Int, &claims.InsurancePrincipal.Int)
	if err != nil {
		return err
	}
	pool.TotalInsurancePrincipal = core.UintFrom(ip)

	ii, err := fullmath.CheckedAdd(&pool.TotalInsuranceInterest.Int, &claims.InsuranceInterest.Int)
	if err != nil {
		return err
	}
	pool.TotalInsuranceInterest = core.UintFrom(ii)

	return nil
}
