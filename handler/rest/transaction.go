package rest

import (
	"net/http"
	"time"

	"tenor/core"
	"tenor/handler/param"
	"tenor/handler/render"
)

const maxTransactionLimit = 500

func transactionsHandler(transactions core.ITransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var params struct {
			Offset string `json:"offset"`
			Limit  int    `json:"limit"`
		}

		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		limit := params.Limit
		if limit <= 0 || limit > maxTransactionLimit {
			limit = maxTransactionLimit
		}

		offsetTime, err := time.Parse(time.RFC3339Nano, params.Offset)
		if err != nil {
			offsetTime = time.Time{}
		}

		rows, err := transactions.List(ctx, offsetTime, limit)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, rows)
	}
}

func poolTransactionsHandler(transactions core.ITransactionStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		maturity, err := maturityParam(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		var params struct {
			Limit int `json:"limit"`
		}
		if e := param.Binding(r, &params); e != nil {
			render.BadRequest(w, e)
			return
		}

		limit := params.Limit
		if limit <= 0 || limit > maxTransactionLimit {
			limit = maxTransactionLimit
		}

		rows, err := transactions.ListByMaturity(ctx, maturity, limit)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, rows)
	}
}
