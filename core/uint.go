package core

import (
	"database/sql/driver"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Uint is the unsigned magnitude used for every reserve, claim, debt and
// liquidity amount. It wraps a 256-bit integer and stores as a decimal
// string so that columns survive any backend without precision loss.
type Uint struct {
	uint256.Int
}

// NewUint uint from uint64
func NewUint(v uint64) Uint {
	var u Uint
	u.SetUint64(v)
	return u
}

// UintFrom copies i into a new Uint
func UintFrom(i *uint256.Int) Uint {
	var u Uint
	if i != nil {
		u.Set(i)
	}
	return u
}

// UintFromString parses a decimal string
func UintFromString(s string) (Uint, error) {
	var u Uint
	if err := u.SetFromDecimal(s); err != nil {
		return Uint{}, err
	}
	return u, nil
}

// Value implements driver.Valuer
func (u Uint) Value() (driver.Value, error) {
	return u.Dec(), nil
}

// Scan implements sql.Scanner
func (u *Uint) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		u.Clear()
		return nil
	case string:
		return u.SetFromDecimal(v)
	case []byte:
		return u.SetFromDecimal(string(v))
	case int64:
		if v < 0 {
			return fmt.Errorf("core: negative value %d for Uint", v)
		}
		u.SetUint64(uint64(v))
		return nil
	default:
		return fmt.Errorf("core: cannot scan %T into Uint", value)
	}
}

// MarshalJSON renders the decimal string
func (u Uint) MarshalJSON() ([]byte, error) {
	return []byte(`"` + u.Dec() + `"`), nil
}

// UnmarshalJSON accepts a quoted or bare decimal
func (u *Uint) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		u.Clear()
		return nil
	}
	return u.SetFromDecimal(s)
}

func (u Uint) String() string {
	return u.Dec()
}
