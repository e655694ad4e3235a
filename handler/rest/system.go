package rest

import (
	"net/http"

	"tenor/core"
	"tenor/handler/render"
)

func systemHandler(cfg *core.Config, systems core.ISystemStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		system, err := systems.Get(ctx)
		if err != nil {
			render.BadRequest(w, err)
			return
		}

		render.JSON(w, render.H{
			"protocol_fee_stored": system.ProtocolFeeStored,
			"fee":                 cfg.Pair.Fee,
			"protocol_fee":        cfg.Pair.ProtocolFee,
			"genesis":             cfg.App.Genesis,
			"seconds_per_block":   cfg.App.SecondsPerBlock,
		})
	}
}
