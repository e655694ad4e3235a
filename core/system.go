package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// System is the single cross-pool row. The protocol-fee accumulator lives
// here so its update joins the same commit as the operation that accrued it.
type System struct {
	ID                uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	ProtocolFeeStored Uint      `sql:"type:varchar(80)" json:"protocol_fee_stored"`
	Version           int64     `sql:"default:0" json:"version"`
	CreatedAt         time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// ISystemStore system store interface
type ISystemStore interface {
	Get(ctx context.Context) (*System, error)
	Save(ctx context.Context, tx *db.DB, system *System) error
}
