package handler

import (
	"net/http"

	"tenor/core"
	"tenor/handler/rest"

	"github.com/go-chi/chi"
)

// Server server
type Server struct {
	cfg          *core.Config
	pools        core.IPoolStore
	liquidities  core.ILiquidityStore
	claims       core.IClaimStore
	dues         core.IDueStore
	systems      core.ISystemStore
	transactions core.ITransactionStore
}

// New new server function
func New(
	cfg *core.Config,
	pools core.IPoolStore,
	liquidities core.ILiquidityStore,
	claims core.IClaimStore,
	dues core.IDueStore,
	systems core.ISystemStore,
	transactions core.ITransactionStore,
) Server {
	return Server{
		cfg:          cfg,
		pools:        pools,
		liquidities:  liquidities,
		claims:       claims,
		dues:         dues,
		systems:      systems,
		transactions: transactions,
	}
}

// HandleRestAPI handle restful apis
func (s Server) HandleRestAPI() http.Handler {
	r := chi.NewRouter()
	r.Mount("/", rest.Handle(s.cfg, s.pools, s.liquidities, s.claims, s.dues, s.systems, s.transactions))

	return r
}
