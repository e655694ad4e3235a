package due

import (
	"context"

	"tenor/core"

	"github.com/fox-one/pkg/store/db"
)

type dueStore struct {
	db *db.DB
}

// New new due store
func New(db *db.DB) core.IDueStore {
	return &dueStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.Due{})
		if err := tx.AutoMigrate(core.Due{}).Error; err != nil {
			return err
		}

		return nil
	})
}

func (s *dueStore) Save(ctx context.Context, tx *db.DB, due *core.Due) error {
	if err := tx.Update().Create(due).Error; err != nil {
		return err
	}
	return nil
}

func (s *dueStore) Find(ctx context.Context, maturity int64, owner string, index int64) (*core.Due, error) {
	var due core.Due
	if err := s.db.View().Where("maturity=? and owner=? and due_index=?", maturity, owner, index).First(&due).Error; err != nil {
		return nil, err
	}

	return &due, nil
}

func (s *dueStore) ListByOwner(ctx context.Context, maturity int64, owner string) ([]*core.Due, error) {
	var dues []*core.Due
	if err := s.db.View().Where("maturity=? and owner=?", maturity, owner).Order("due_index ASC").Find(&dues).Error; err != nil {
		return nil, err
	}

	return dues, nil
}

func (s *dueStore) CountByOwner(ctx context.Context, maturity int64, owner string) (int64, error) {
	var count int64
	if err := s.db.View().Model(core.Due{}).Where("maturity=? and owner=?", maturity, owner).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

func (s *dueStore) Update(ctx context.Context, tx *db.DB, due *core.Due) error {
	version := due.Version
	due.Version++
	update := tx.Update().Model(core.Due{}).Where("maturity=? and owner=? and due_index=? and version=?", due.Maturity, due.Owner, due.DueIndex, version).Update(due)
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
