package pool

import (
	"context"
	"fmt"
	"time"

	"tenor/core"

	"github.com/bluele/gcache"
	"github.com/fox-one/pkg/store/db"
	"golang.org/x/sync/singleflight"
)

// Cache wraps a pool store with a short-lived read cache for the query
// path. Writes go through and drop the cached row.
func Cache(store core.IPoolStore, exp time.Duration) core.IPoolStore {
	return &cachePoolStore{
		IPoolStore: store,
		cache:      gcache.New(1024).LRU().Build(),
		sf:         &singleflight.Group{},
		exp:        exp,
	}
}

type cachePoolStore struct {
	core.IPoolStore
	cache gcache.Cache
	sf    *singleflight.Group
	exp   time.Duration
}

func (s *cachePoolStore) Save(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	if err := s.IPoolStore.Save(ctx, tx, pool); err != nil {
		return err
	}
	s.cache.Remove(s.poolKey(pool.Maturity))
	return nil
}

func (s *cachePoolStore) Update(ctx context.Context, tx *db.DB, pool *core.Pool) error {
	if err := s.IPoolStore.Update(ctx, tx, pool); err != nil {
		return err
	}
	s.cache.Remove(s.poolKey(pool.Maturity))
	return nil
}

func (s *cachePoolStore) Find(ctx context.Context, maturity int64) (*core.Pool, error) {
	key := s.poolKey(maturity)
	if v, err := s.cache.Get(key); err == nil {
		if pool, ok := v.(*core.Pool); ok {
			return pool, nil
		}
	}

	v, err, _ := s.sf.Do(key, func() (interface{}, error) {
		pool, err := s.IPoolStore.Find(ctx, maturity)
		if err != nil {
			return nil, err
		}

		_ = s.cache.SetWithExpire(key, pool, s.exp)
		return pool, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*core.Pool), nil
}

func (s *cachePoolStore) poolKey(maturity int64) string {
	return fmt.Sprintf("pool:%d", maturity)
}
