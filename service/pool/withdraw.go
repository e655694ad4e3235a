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

// Withdraw redeems claim balances after maturity. Bonds pay out in asset,
// insurance in collateral when the asset reserve is short.
func (s *poolService) Withdraw(ctx context.Context, params core.WithdrawParams) (*core.Tokens, error) {
	log := logger.FromContext(ctx).WithField("operation", "withdraw")

	if err := requireRecipients(params.AssetTo, params.CollateralTo); err != nil {
		return nil, err
	}
	if params.ClaimsIn.IsZero() {
		return nil, core.ErrZeroAmount
	}

	if err := tenor.CheckMatured(params.Maturity, s.clock()); err != nil {
		return nil, err
	}

	pool, err := s.findPool(ctx, params.Maturity)
	if err != nil {
		return nil, err
	}

	claim, err := s.findClaim(ctx, params.Maturity, params.Caller)
	if err != nil {
		return nil, err
	}
	if err := debitClaim(claim, params.ClaimsIn); err != nil {
		return nil, err
	}

	outcome, err := tenor.Withdraw(pool, params.ClaimsIn)
	if err != nil {
		return nil, err
	}

	if err := s.applyWithdraw(pool, params.ClaimsIn, outcome); err != nil {
		return nil, err
	}

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.pools.Update(ctx, tx, pool); err != nil {
			return err
		}
		if err := s.saveClaim(ctx, tx, claim); err != nil {
			return err
		}

		extra := core.NewTransactionExtra()
		extra.Put("claims_in", params.ClaimsIn)
		if err := s.journal(ctx, tx, core.ActionWithdraw, params.Maturity, params.Caller, core.UintFrom(outcome.AssetOut), core.UintFrom(outcome.CollateralOut), extra); err != nil {
			return err
		}

		var g errgroup.Group
		if !outcome.AssetOut.IsZero() {
			g.Go(func() error {
				return s.custodian.TransferAsset(ctx, params.AssetTo, core.UintFrom(outcome.AssetOut))
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

	log.WithField("maturity", params.Maturity).Infoln("withdrew claims")

	return &core.Tokens{
		Asset:      core.UintFrom(outcome.AssetOut),
		Collateral: core.UintFrom(outcome.CollateralOut),
	}, nil
}

// debitClaim reduces the owner's claim row by the amounts redeemed
func debitClaim(claim *core.Claim, in core.Claims) error {
	pairs := []struct {
		balance *core.Uint
		amount  core.Uint
	}{
		{&claim.BondPrincipal, in.BondPrincipal},
		{&claim.BondInterest, in.BondInterest},
		{&claim.InsurancePrincipal, in.InsurancePrincipal},
		{&claim.InsuranceInterest, in.InsuranceInterest},
	}
	for _, p := range pairs {
		if p.amount.Gt(&p.balance.Int) {
			return core.ErrAmountUnderflow
		}
		p.balance.Int = *new(uint256.Int).Sub(&p.balance.Int, &p.amount.Int)
	}

	return nil
}

func (s *poolService) applyWithdraw(pool *core.Pool, in core.Claims, outcome *tenor.WithdrawOutcome) error {
	totals := []struct {
		total  *core.Uint
		amount core.Uint
	}{
		{&pool.TotalBondPrincipal, in.BondPrincipal},
		{&pool.TotalBondInterest, in.BondInterest},
		{&pool.TotalInsurancePrincipal, in.InsurancePrincipal},
		{&pool.TotalInsuranceInterest, in.InsuranceInterest},
	}
	for _, t := range totals {
		next, err := fullmath.CheckedSub(&t.total.Int, &t.amount.Int)
		if err != nil {
			return err
		}
		t.total.Int = *next
	}

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
