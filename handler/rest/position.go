package rest

import (
	"errors"
	"net/http"

	"tenor/core"
	"tenor/handler/param"
	"tenor/handler/render"

	"github.com/go-chi/chi"
	"github.com/jinzhu/gorm"
	"github.com/spf13/cast"
)

type ownerParams struct {
	Owner string `json:"owner"`
}

func bindOwner(r *http.Request) (int64, string, error) {
	maturity, err := maturityParam(r)
	if err != nil {
		return 0, "", err
	}

	var params ownerParams
	if err := param.Binding(r, &params); err != nil {
		return 0, "", err
	}
	if params.Owner == "" {
		return 0, "", errors.New("owner required")
	}

	return maturity, params.Owner, nil
}

func liquidityHandler(liquidities core.ILiquidityStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		maturity, owner, err := bindOwner(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		liquidity, err := liquidities.Find(ctx, maturity, owner)
		if err != nil {
			if !gorm.IsRecordNotFoundError(err) {
				render.BadRequest(w, err)
				return
			}
			liquidity = &core.Liquidity{Maturity: maturity, Owner: owner}
		}

		render.JSON(w, liquidity)
	}
}

func claimsHandler(claims core.IClaimStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		maturity, owner, err := bindOwner(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		claim, err := claims.Find(ctx, maturity, owner)
		if err != nil {
			if !gorm.IsRecordNotFoundError(err) {
				render.BadRequest(w, err)
				return
			}
			claim = &core.Claim{Maturity: maturity, Owner: owner}
		}

		render.JSON(w, claim)
	}
}

func duesHandler(dues core.IDueStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		maturity, owner, err := bindOwner(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		rows, err := dues.ListByOwner(ctx, maturity, owner)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, rows)
	}
}

func dueHandler(dues core.IDueStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		maturity, owner, err := bindOwner(r)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		index, err := cast.ToInt64E(chi.URLParam(r, "index"))
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		due, err := dues.Find(ctx, maturity, owner, index)
		if err != nil {
			if gorm.IsRecordNotFoundError(err) {
				render.Error(w, core.ErrDueNotFound)
				return
			}
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, due)
	}
}
