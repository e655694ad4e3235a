package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Liquidity per-owner liquidity share balance for one maturity
type Liquidity struct {
	ID        uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Maturity  int64     `sql:"unique_index:idx_liquidities_maturity_owner" json:"maturity"`
	Owner     string    `sql:"size:64;unique_index:idx_liquidities_maturity_owner" json:"owner"`
	Balance   Uint      `sql:"type:varchar(80)" json:"balance"`
	Version   int64     `sql:"default:0" json:"version"`
	CreatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ILiquidityStore liquidity store interface
type ILiquidityStore interface {
	Save(ctx context.Context, tx *db.DB, liquidity *Liquidity) error
	Find(ctx context.Context, maturity int64, owner string) (*Liquidity, error)
	Update(ctx context.Context, tx *db.DB, liquidity *Liquidity) error
}
