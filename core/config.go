package core

import (
	"github.com/fox-one/pkg/store/db"
)

// Config tenor config
type Config struct {
	App     App       `json:"app"`
	DB      db.Config `json:"db"`
	Pair    Pair      `json:"pair"`
	Custody Custody   `json:"custody"`
	Admins  []string  `json:"admins"`
}

// IsAdmin check if the identity is an admin
func (c *Config) IsAdmin(id string) bool {
	if len(c.Admins) <= 0 {
		return false
	}

	for _, a := range c.Admins {
		if a == id {
			return true
		}
	}

	return false
}

// App app config
type App struct {
	Genesis         int64  `json:"genesis" valid:"required"`
	SecondsPerBlock int64  `json:"seconds_per_block"`
	Location        string `json:"location"`
}

// Pair fee configuration of the asset pair, in per-second base points
// against a base of 2^40
type Pair struct {
	Fee         uint64 `json:"fee" valid:"range(0|65535)"`
	ProtocolFee uint64 `json:"protocol_fee" valid:"range(0|65535)"`
}

// Custody external custodian endpoint
type Custody struct {
	Endpoint string `json:"endpoint" valid:"url,required"`
	Token    string `json:"token"`
}
