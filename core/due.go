package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Due is a single collateralized debt. Entries are appended on mint and
// borrow, reduced in place on pay, and never removed; a fully repaid due
// stays as a zero row. DueIndex is the position in the owner's list and is
// the identifier external callers reference.
type Due struct {
	ID         uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Maturity   int64     `sql:"unique_index:idx_dues_maturity_owner_index" json:"maturity"`
	Owner      string    `sql:"size:64;unique_index:idx_dues_maturity_owner_index" json:"owner"`
	DueIndex   int64     `sql:"unique_index:idx_dues_maturity_owner_index" json:"due_index"`
	Debt       Uint      `sql:"type:varchar(80)" json:"debt"`
	Collateral Uint      `sql:"type:varchar(80)" json:"collateral"`
	StartBlock int64     `json:"start_block"`
	Version    int64     `sql:"default:0" json:"version"`
	CreatedAt  time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt  time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IDueStore due store interface
type IDueStore interface {
	Save(ctx context.Context, tx *db.DB, due *Due) error
	Find(ctx context.Context, maturity int64, owner string, index int64) (*Due, error)
	ListByOwner(ctx context.Context, maturity int64, owner string) ([]*Due, error)
	CountByOwner(ctx context.Context, maturity int64, owner string) (int64, error)
	Update(ctx context.Context, tx *db.DB, due *Due) error
}
