package system

import (
	"context"

	"tenor/core"

	"github.com/fox-one/pkg/store/db"
	"github.com/jinzhu/gorm"
)

type systemStore struct {
	db *db.DB
}

// New new system store
func New(db *db.DB) core.ISystemStore {
	return &systemStore{db: db}
}

func init() {
	db.RegisterMigrate(func(db *db.DB) error {
		tx := db.Update().Model(core.System{})
		if err := tx.AutoMigrate(core.System{}).Error; err != nil {
			return err
		}

		return nil
	})
}

// Get returns the singleton system row, a zero row before the first save
func (s *systemStore) Get(ctx context.Context) (*core.System, error) {
	var system core.System
	if err := s.db.View().Order("id ASC").First(&system).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return &core.System{}, nil
		}
		return nil, err
	}

	return &system, nil
}

func (s *systemStore) Save(ctx context.Context, tx *db.DB, system *core.System) error {
	if system.ID == 0 {
		return tx.Update().Create(system).Error
	}

	version := system.Version
	system.Version++
	update := tx.Update().Model(core.System{}).Where("id=? and version=?", system.ID, version).Update(system)
	if update.Error != nil {
		return update.Error
	}

	if update.RowsAffected == 0 {
		return db.ErrOptimisticLock
	}

	return nil
}
