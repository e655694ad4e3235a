package claim

import (
	"context"

	"tenor/core"

	"github.com/fox-one/pkg/store/db"
)

type claimStore struct {
	db *db.DB
}

// New new claim store
func New(db *db.DB) core.IClaimStore {
	return &claimStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Claim{})
		if err := tx.AutoMigrate(core.Claim{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *claimStore) Save(ctx context.Context, tx *db.DB, claim *core.Claim) error {
	if err := tx.Update().Create(claim).Error; err != nil {
		return err
	}
	return nil
}

func (s *claimStore) Find(ctx context.Context, maturity int64, owner string) (*core.Claim, error) {
	var claim core.Claim
	if err := s.db.View().Where("maturity=? and owner=?", maturity, owner).First(&claim).Error; err != nil {
		return nil, err
	}

	return &claim, nil
}

func (s *claimStore) Update(ctx context.Context, tx *db.DB, claim *core.Claim) error {
	version := claim.Version
	claim.Version++
	update := tx.Update().Model(core.Claim{}).Where("maturity=? and owner=? and version=?", claim.Maturity, claim.Owner, version).Update(claim)
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
