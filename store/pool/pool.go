package pool

import (
	"context"

	"tenor/core"

	"github.com/fox-one/pkg/store/db"
)

type poolStore struct {
	db *db.DB
}

// New new pool store
func New(db *db.DB) core.IPoolStore {
	return &poolStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Pool{})
		if err := tx.AutoMigrate(core.Pool{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *poolStore) Save(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	if err := tx.Update().Create(pool).Error; err != nil {
		return err
	}
	return nil
}

func (s *poolStore) Find(ctx context.Context, maturity int64) (*core.Pool, error) {
	var pool core.Pool
	if err := s.db.View().Where("maturity=?", maturity).First(&pool).Error; err != nil {
		return nil, err
	}

	return &pool, nil
}

func (s *poolStore) All(ctx context.Context) ([]*core.Pool, error) {
	var pools []*core.Pool
	if err := s.db.View().Order("maturity ASC").Find(&pools).Error; err != nil {
		return nil, err
	}
	return pools, nil
}

func (s *poolStore) Update(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	version := pool.Version
	pool.Version++
	update := tx.Update().Model(core.Pool{}).Where("maturity=? and version=?", pool.Maturity, version).Update(pool)
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
