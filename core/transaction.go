package core

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fox-one/pkg/store/db"
	"github.com/jmoiron/sqlx/types"
)

// ActionType journal action
type ActionType int

const (
	// ActionMint provide liquidity
	ActionMint ActionType = iota + 1
	// ActionBurn remove liquidity
	ActionBurn
	// ActionLend lend asset for claims
	ActionLend
	// ActionWithdraw redeem claims
	ActionWithdraw
	// ActionBorrow borrow asset against collateral
	ActionBorrow
	// ActionPay repay dues
	ActionPay
	// ActionCollectProtocolFee collect the protocol-fee accumulator
	ActionCollectProtocolFee
)

// TransactionExtraData extra data
type TransactionExtraData map[string]interface{}

// NewTransactionExtra new transaction extra instance
func NewTransactionExtra() TransactionExtraData {
	return make(TransactionExtraData)
}

// Put put data
func (t TransactionExtraData) Put(key string, value interface{}) {
	t[key] = value
}

// Format format as []byte by default
func (t TransactionExtraData) Format() []byte {
	bs, e := json.Marshal(t)
	if e != nil {
		return []byte("{}")
	}

	return bs
}

// Transaction one committed operation, journaled in the same commit that
// applied its deltas
type Transaction struct {
	ID               uint64         `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	TraceID          string         `sql:"size:36;unique_index:idx_transactions_trace_id" json:"trace_id"`
	Action           ActionType     `json:"action"`
	Maturity         int64          `sql:"index:idx_transactions_maturity" json:"maturity"`
	Caller           string         `sql:"size:64;index:idx_transactions_caller" json:"caller"`
	AssetAmount      Uint           `sql:"type:varchar(80)" json:"asset_amount"`
	CollateralAmount Uint           `sql:"type:varchar(80)" json:"collateral_amount"`
	Data             types.JSONText `sql:"type:TEXT" json:"data"`
	CreatedAt        time.Time      `sql:"default:CURRENT_TIMESTAMP;index:idx_transactions_created_at" json:"created_at"`
}

// SetExtraData set journal payload
func (t *Transaction) SetExtraData(extra TransactionExtraData) {
	data := []byte("{}")
	if extra != nil {
		data = extra.Format()
	}

	t.Data = data
}

// ITransactionStore journal store interface
type ITransactionStore interface {
	Create(ctx context.Context, tx *db.DB, transaction *Transaction) error
	List(ctx context.Context, offset time.Time, limit int) ([]*Transaction, error)
	ListByMaturity(ctx context.Context, maturity int64, limit int) ([]*Transaction, error)
}
