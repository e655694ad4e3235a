package liquidity

import (
	"context"

	"tenor/core"

	"github.com/fox-one/pkg/store/db"
)

type liquidityStore struct {
	db *db.DB
}

// New new liquidity store
func New(db *db.DB) core.ILiquidityStore {
	return &liquidityStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Liquidity{})
		if err := tx.AutoMigrate(core.Liquidity{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *liquidityStore) Save(ctx context.Context, tx *db.DB, liquidity *core.Liquidity) error {
	if err := tx.Update().Create(liquidity).Error; err != nil {
		return err
	}
	return nil
}

func (s *liquidityStore) Find(ctx context.Context, maturity int64, owner string) (*core.Liquidity, error) {
	var liquidity core.Liquidity
	if err := s.db.View().Where("maturity=? and owner=?", maturity, owner).First(&liquidity).Error; err != nil {
		return nil, err
	}

	return &liquidity, nil
}

func (s *liquidityStore) Update(ctx context.Context, tx *db.DB, liquidity *core.Liquidity) error {
	version := liquidity.Version
	liquidity.Version++
	update := tx.Update().Model(core.Liquidity{}).Where("maturity=? and owner=? and version=?", liquidity.Maturity, liquidity.Owner, version).Update(liquidity)
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
