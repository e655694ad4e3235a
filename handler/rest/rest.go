package rest

import (
	"errors"
	"net/http"

	"tenor/core"
	"tenor/handler/render"

	"github.com/go-chi/chi"
	"github.com/spf13/cast"
)

// Handle handle rest api request
func Handle(
	cfg *core.Config,
	pools core.IPoolStore,
	liquidities core.ILiquidityStore,
	claims core.IClaimStore,
	dues core.IDueStore,
	systems core.ISystemStore,
	transactions core.ITransactionStore,
) http.Handler {
	router := chi.NewRouter()

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.NotFoundRequest(w, errors.New("not found"))
	})

	router.Get("/pools", allPoolsHandler(pools))
	router.Get("/pools/{maturity}", poolHandler(pools))
	router.Get("/pools/{maturity}/liquidity", liquidityHandler(liquidities))
	router.Get("/pools/{maturity}/claims", claimsHandler(claims))
	router.Get("/pools/{maturity}/dues", duesHandler(dues))
	router.Get("/pools/{maturity}/dues/{index}", dueHandler(dues))
	router.Get("/pools/{maturity}/transactions", poolTransactionsHandler(transactions))
	router.Get("/transactions", transactionsHandler(transactions))
	router.Get("/system", systemHandler(cfg, systems))

	return router
}

func maturityParam(r *http.Request) (int64, error) {
	return cast.ToInt64E(chi.URLParam(r, "maturity"))
}
