package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Claims the four independently accounted claim magnitudes. Bond claims
// redeem in asset; insurance claims are the fallback payable in collateral
// when the asset pool is short at maturity.
type Claims struct {
	BondPrincipal      Uint `json:"bond_principal"`
	BondInterest       Uint `json:"bond_interest"`
	InsurancePrincipal Uint `json:"insurance_principal"`
	InsuranceInterest  Uint `json:"insurance_interest"`
}

// IsZero reports whether all four magnitudes are zero
func (c Claims) IsZero() bool {
	return c.BondPrincipal.IsZero() &&
		c.BondInterest.IsZero() &&
		c.InsurancePrincipal.IsZero() &&
		c.InsuranceInterest.IsZero()
}

// Claim per-owner claim balances for one maturity
type Claim struct {
	ID                 uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Maturity           int64     `sql:"unique_index:idx_claims_maturity_owner" json:"maturity"`
	Owner              string    `sql:"size:64;unique_index:idx_claims_maturity_owner" json:"owner"`
	BondPrincipal      Uint      `sql:"type:varchar(80)" json:"bond_principal"`
	BondInterest       Uint      `sql:"type:varchar(80)" json:"bond_interest"`
	InsurancePrincipal Uint      `sql:"type:varchar(80)" json:"insurance_principal"`
	InsuranceInterest  Uint      `sql:"type:varchar(80)" json:"insurance_interest"`
	Version            int64     `sql:"default:0" json:"version"`
	CreatedAt          time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt          time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// Balances the claim row as a Claims value
func (c *Claim) Balances() Claims {
	return Claims{
		BondPrincipal:      c.BondPrincipal,
		BondInterest:       c.BondInterest,
		InsurancePrincipal: c.InsurancePrincipal,
		InsuranceInterest:  c.InsuranceInterest,
	}
}

// IClaimStore claim store interface
type IClaimStore interface {
	Save(ctx context.Context, tx *db.DB, claim *Claim) error
	Find(ctx context.Context, maturity int64, owner string) (*Claim, error)
	Update(ctx context.Context, tx *db.DB, claim *Claim) error
}
