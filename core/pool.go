package core

import (
	"context"
	"time"

	"github.com/fox-one/pkg/store/db"
)

// Pool is the per-maturity state row. x prices the lendable asset, the y:x
// ratio the implied interest rate and the z:x ratio the required collateral.
// AssetReserve and CollateralReserve track what the custodian holds on behalf
// of this maturity for settlement. Fee shares never enter AssetReserve: the
// liquidity provider share accrues under FeeStored and the protocol share
// under System.ProtocolFeeStored, so the custodied asset balance is the sum
// of all three buckets.
type Pool struct {
	ID                      uint64    `sql:"PRIMARY_KEY;AUTO_INCREMENT" json:"id"`
	Maturity                int64     `sql:"unique_index:idx_pools_maturity" json:"maturity"`
	X                       Uint      `sql:"type:varchar(80)" json:"x"`
	Y                       Uint      `sql:"type:varchar(80)" json:"y"`
	Z                       Uint      `sql:"type:varchar(80)" json:"z"`
	TotalLiquidity          Uint      `sql:"type:varchar(80)" json:"total_liquidity"`
	FeeStored               Uint      `sql:"type:varchar(80)" json:"fee_stored"`
	TotalBondPrincipal      Uint      `sql:"type:varchar(80)" json:"total_bond_principal"`
	TotalBondInterest       Uint      `sql:"type:varchar(80)" json:"total_bond_interest"`
	TotalInsurancePrincipal Uint      `sql:"type:varchar(80)" json:"total_insurance_principal"`
	TotalInsuranceInterest  Uint      `sql:"type:varchar(80)" json:"total_insurance_interest"`
	AssetReserve            Uint      `sql:"type:varchar(80)" json:"asset_reserve"`
	CollateralReserve       Uint      `sql:"type:varchar(80)" json:"collateral_reserve"`
	TotalDebtCreated        Uint      `sql:"type:varchar(80)" json:"total_debt_created"`
	Version                 int64     `sql:"default:0" json:"version"`
	CreatedAt               time.Time `sql:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt               time.Time `sql:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

// IPoolStore pool store interface
type IPoolStore interface {
	Save(ctx context.Context, tx *db.DB, pool *Pool) error
	Find(ctx context.Context, maturity int64) (*Pool, error)
	All(ctx context.Context) ([]*Pool, error)
	Update(ctx context.Context, tx *db.DB, pool *Pool) error
}

// MintParams parameters for providing liquidity
type MintParams struct {
	Caller       string
	Maturity     int64
	XIncrease    Uint
	YIncrease    Uint
	ZIncrease    Uint
	LiquidityTo  string
	DueTo        string
	Callback     MintCallback
	CallbackData []byte
}

// MintResult deltas committed by a mint
type MintResult struct {
	AssetIn      Uint  `json:"asset_in"`
	LiquidityOut Uint  `json:"liquidity_out"`
	DueIndex     int64 `json:"due_index"`
	Due          Due   `json:"due"`
}

// BurnParams parameters for removing liquidity after maturity
type BurnParams struct {
	Caller       string
	Maturity     int64
	LiquidityIn  Uint
	AssetTo      string
	CollateralTo string
}

// Tokens plain asset/collateral output pair
type Tokens struct {
	Asset      Uint `json:"asset"`
	Collateral Uint `json:"collateral"`
}

// LendParams parameters for lending into the pool
type LendParams struct {
	Caller       string
	Maturity     int64
	XIncrease    Uint
	YDecrease    Uint
	ZDecrease    Uint
	BondTo       string
	InsuranceTo  string
	Callback     LendCallback
	CallbackData []byte
}

// LendResult deltas committed by a lend
type LendResult struct {
	AssetIn Uint   `json:"asset_in"`
	Claims  Claims `json:"claims"`
}

// WithdrawParams parameters for redeeming claims after maturity
type WithdrawParams struct {
	Caller       string
	Maturity     int64
	ClaimsIn     Claims
	AssetTo      string
	CollateralTo string
}

// BorrowParams parameters for borrowing against collateral
type BorrowParams struct {
	Caller       string
	Maturity     int64
	XDecrease    Uint
	YIncrease    Uint
	ZIncrease    Uint
	AssetTo      string
	DueTo        string
	Callback     BorrowCallback
	CallbackData []byte
}

// BorrowResult deltas committed by a borrow
type BorrowResult struct {
	AssetOut Uint  `json:"asset_out"`
	DueIndex int64 `json:"due_index"`
	Due      Due   `json:"due"`
}

// PayParams parameters for repaying a batch of dues
type PayParams struct {
	Caller         string
	Maturity       int64
	Owner          string
	CollateralTo   string
	DueIndexes     []int64
	AssetsIn       []Uint
	CollateralsOut []Uint
	Callback       PayCallback
	CallbackData   []byte
}

// PayResult totals committed by a pay batch
type PayResult struct {
	AssetIn       Uint `json:"asset_in"`
	CollateralOut Uint `json:"collateral_out"`
}

// IPoolService is the transaction engine entry point set. Every method is a
// single atomic unit of work: it either commits a consistent new state or
// returns an error with zero observable effect.
type IPoolService interface {
	Mint(ctx context.Context, params MintParams) (*MintResult, error)
	Burn(ctx context.Context, params BurnParams) (*Tokens, error)
	Lend(ctx context.Context, params LendParams) (*LendResult, error)
	Withdraw(ctx context.Context, params WithdrawParams) (*Tokens, error)
	Borrow(ctx context.Context, params BorrowParams) (*BorrowResult, error)
	Pay(ctx context.Context, params PayParams) (*PayResult, error)
	CollectProtocolFee(ctx context.Context, caller, recipient string) (Uint, error)
}
