package pool

import (
	"context"
	"time"

	"tenor/core"
	"tenor/internal/chain"
	"tenor/pkg/fullmath"

	"github.com/fox-one/pkg/store/db"
	"github.com/holiman/uint256"
	"github.com/jinzhu/gorm"
)

type poolService struct {
	cfg          *core.Config
	db           *db.DB
	pools        core.IPoolStore
	liquidities  core.ILiquidityStore
	claims       core.IClaimStore
	dues         core.IDueStore
	systems      core.ISystemStore
	transactions core.ITransactionStore
	custodian    core.Custodian

	clock func() time.Time
}

// New new pool service
func New(
	cfg *core.Config,
	db *db.DB,
	pools core.IPoolStore,
	liquidities core.ILiquidityStore,
	claims core.IClaimStore,
	dues core.IDueStore,
	systems core.ISystemStore,
	transactions core.ITransactionStore,
	custodian core.Custodian,
) core.IPoolService {
	return &poolService{
		cfg:          cfg,
		db:           db,
		pools:        pools,
		liquidities:  liquidities,
		claims:       claims,
		dues:         dues,
		systems:      systems,
		transactions: transactions,
		custodian:    custodian,
		clock:        func() time.Time { return time.Now().UTC() },
	}
}

func requireRecipients(ids ...string) error {
	for _, id := range ids {
		if id == "" {
			return core.ErrZeroRecipient
		}
	}

	return nil
}

func requireAmounts(amounts ...core.Uint) error {
	for _, a := range amounts {
		if a.IsZero() {
			return core.ErrZeroAmount
		}
	}

	return nil
}

func (s *poolService) currentBlock(ctx context.Context) (int64, error) {
	secondsPerBlock := s.cfg.App.SecondsPerBlock
	if secondsPerBlock <= 0 {
		secondsPerBlock = 15
	}

	return chain.BlockAt(ctx, secondsPerBlock, s.cfg.App.Genesis, s.clock())
}

func (s *poolService) findPool(ctx context.Context, maturity int64) (*core.Pool, error) {
	pool, err := s.pools.Find(ctx, maturity)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, core.ErrPoolNotFound
		}
		return nil, err
	}

	return pool, nil
}

// findOrInitPool a pool is implicitly created on the first mint into a
// never-used maturity
func (s *poolService) findOrInitPool(ctx context.Context, maturity int64) (*core.Pool, bool, error) {
	pool, err := s.pools.Find(ctx, maturity)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Pool{Maturity: maturity}, true, nil
		}
		return nil, false, err
	}

	return pool, false, nil
}

func (s *poolService) findLiquidity(ctx context.Context, maturity int64, owner string) (*core.Liquidity, error) {
	liquidity, err := s.liquidities.Find(ctx, maturity, owner)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Liquidity{Maturity: maturity, Owner: owner}, nil
		}
		return nil, err
	}

	return liquidity, nil
}

func (s *poolService) findClaim(ctx context.Context, maturity int64, owner string) (*core.Claim, error) {
	claim, err := s.claims.Find(ctx, maturity, owner)
	if err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.Claim{Maturity: maturity, Owner: owner}, nil
		}
		return nil, err
	}

	return claim, nil
}

func (s *poolService) saveLiquidity(ctx context.Context, tx *db.DB, liquidity *core.Liquidity) error {
	if liquidity.ID == 0 {
		return s.liquidities.Save(ctx, tx, liquidity)
	}

	return s.liquidities.Update(ctx, tx, liquidity)
}

func (s *poolService) saveClaim(ctx context.Context, tx *db.DB, claim *core.Claim) error {
	if claim.ID == 0 {
		return s.claims.Save(ctx, tx, claim)
	}

	return s.claims.Update(ctx, tx, claim)
}

func (s *poolService) savePool(ctx context.Context, tx *db.DB, pool *core.Pool, created bool) error {
	if created {
		return s.pools.Save(ctx, tx, pool)
	}

	return s.pools.Update(ctx, tx, pool)
}

// verifyAssetDelivered checks, after a funding callback returned, that the
// custodian holds at least the balance recorded before the callback plus
// the amount the caller owed.
func (s *poolService) verifyAssetDelivered(ctx context.Context, before core.Uint, owed *uint256.Int) error {
	after, err := s.custodian.AssetBalance(ctx)
	if err != nil {
		return err
	}

	need, err := fullmath.CheckedAdd(&before.Int, owed)
	if err != nil {
		return err
	}
	if after.Lt(need) {
		return core.ErrInsufficientFunds
	}

	return nil
}

func (s *poolService) verifyCollateralDelivered(ctx context.Context, before core.Uint, owed *uint256.Int) error {
	after, err := s.custodian.CollateralBalance(ctx)
	if err != nil {
		return err
	}

	need, err := fullmath.CheckedAdd(&before.Int, owed)
	if err != nil {
		return err
	}
	if after.Lt(need) {
		return core.ErrInsufficientFunds
	}

	return nil
}
