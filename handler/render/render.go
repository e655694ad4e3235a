package render

import (
	"encoding/json"
	"net/http"

	"tenor/core"

	"github.com/twitchtv/twirp"
)

type H map[string]interface{}

// JSON render with json
func JSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	_ = json.NewEncoder(w).Encode(v)
}

// Text render with text
func Text(w http.ResponseWriter, t string) {
	w.Header().Set("Content-Type", "application/text")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(t))
}

// Error writes err as a json body with the engine error code when err is a
// core.ErrorCode, mapping its fault kind to the http status.
func Error(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := -1

	if ec, ok := err.(core.ErrorCode); ok {
		code = int(ec)
		status = twirp.ServerHTTPStatusFromErrorCode(twirpCode(ec))
	} else if terr, ok := err.(twirp.Error); ok {
		status = twirp.ServerHTTPStatusFromErrorCode(terr.Code())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(H{"code": code, "msg": err.Error()})
}

// BadRequest bad request error
func BadRequest(w http.ResponseWriter, err error) {
	Error(w, twirp.InvalidArgumentError("request", err.Error()))
}

// NotFoundRequest not found request error
func NotFoundRequest(w http.ResponseWriter, err error) {
	Error(w, twirp.NotFoundError(err.Error()))
}

func twirpCode(e core.ErrorCode) twirp.ErrorCode {
	switch e {
	case core.ErrPoolNotFound, core.ErrDueNotFound:
		return twirp.NotFound
	case core.ErrForbidden, core.ErrCollateralNotOwned:
		return twirp.PermissionDenied
	}

	switch e.Fault() {
	case "validation", "rate_bound", "ratio", "arithmetic":
		return twirp.InvalidArgument
	case "same_block", "funding", "invariant":
		return twirp.FailedPrecondition
	default:
		return twirp.Internal
	}
}
