package core

import "context"

// Custodian is the external asset-custody collaborator. The engine never
// moves tokens itself: it orders transfers out and verifies balances after
// funding callbacks return.
type Custodian interface {
	AssetBalance(ctx context.Context) (Uint, error)
	CollateralBalance(ctx context.Context) (Uint, error)
	TransferAsset(ctx context.Context, recipient string, amount Uint) error
	TransferCollateral(ctx context.Context, recipient string, amount Uint) error
}

// MintCallback must deliver assetIn and collateralIn to the custodian
// before returning.
type MintCallback interface {
	TenorMint(ctx context.Context, maturity int64, assetIn, collateralIn Uint, data []byte) error
}

// LendCallback must deliver assetIn to the custodian before returning.
type LendCallback interface {
	TenorLend(ctx context.Context, maturity int64, assetIn Uint, data []byte) error
}

// BorrowCallback must deliver collateralIn to the custodian before
// returning; the borrowed asset has already been sent out.
type BorrowCallback interface {
	TenorBorrow(ctx context.Context, maturity int64, collateralIn Uint, data []byte) error
}

// PayCallback must deliver assetIn to the custodian before returning.
type PayCallback interface {
	TenorPay(ctx context.Context, maturity int64, assetIn Uint, data []byte) error
}
