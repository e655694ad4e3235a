package rest

import (
	"net/http"
	"time"

	"tenor/core"
	"tenor/handler/render"
	"tenor/handler/views"

	"github.com/jinzhu/gorm"
)

func allPoolsHandler(pools core.IPoolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		rows, err := pools.All(ctx)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		now := time.Now().Unix()
		items := make([]views.Pool, 0, len(rows))
		for _, pool := range rows {
			items = append(items, views.NewPool(pool, pool.Maturity <= now))
		}

		render.JSON(w, items)
	}
}

func poolHandler(pools core.IPoolStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		maturity, err := maturityParam(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		pool, err := pools.Find(ctx, maturity)
		if err != nil {
			if gorm.IsRecordNotFoundError(err) {
				render.Error(w, core.ErrPoolNotFound)
				return
			}
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, views.NewPool(pool, pool.Maturity <= time.Now().Unix()))
	}
}
