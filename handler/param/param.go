package param

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/schema"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
	decoder.SetAliasTag("json")
}

// Binding binds query values, and the json body for non-GET requests, into v
func Binding(r *http.Request, v interface{}) error {
	if err := decoder.Decode(v, r.URL.Query()); err != nil {
		return err
	}

	if r.Method != http.MethodGet && r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(v); err != nil {
			return err
		}
	}

	return nil
}
