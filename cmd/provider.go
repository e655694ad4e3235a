package cmd

import (
	"time"

	"tenor/core"
	"tenor/handler"
	"tenor/service/custody"
	poolservice "tenor/service/pool"
	"tenor/store/claim"
	"tenor/store/due"
	"tenor/store/liquidity"
	"tenor/store/pool"
	"tenor/store/system"
	"tenor/store/transaction"

	"github.com/fox-one/pkg/property"
	"github.com/fox-one/pkg/store/db"
	propertystore "github.com/fox-one/pkg/store/property"
)

func provideDatabase() *db.DB {
	return db.MustOpen(cfg.DB)
}

func provideConfig() *core.Config {
	return &cfg
}

func providePropertyStore(db *db.DB) property.Store {
	return propertystore.New(db)
}

func providePoolStore(db *db.DB) core.IPoolStore {
	return pool.New(db)
}

func provideLiquidityStore(db *db.DB) core.ILiquidityStore {
	return liquidity.New(db)
}

func provideClaimStore(db *db.DB) core.IClaimStore {
	return claim.New(db)
}

func provideDueStore(db *db.DB) core.IDueStore {
	return due.New(db)
}

func provideSystemStore(db *db.DB) core.ISystemStore {
	return system.New(db)
}

func provideTransactionStore(db *db.DB) core.ITransactionStore {
	return transaction.New(db)
}

func provideCustodian() core.Custodian {
	return custody.New(&cfg)
}

func providePoolService(database *db.DB) core.IPoolService {
	return poolservice.New(
		provideConfig(),
		database,
		providePoolStore(database),
		provideLiquidityStore(database),
		provideClaimStore(database),
		provideDueStore(database),
		provideSystemStore(database),
		provideTransactionStore(database),
		provideCustodian(),
	)
}

// provideServer read path pools go through the short-lived cache; the
// transaction engine always reads fresh rows for optimistic locking.
func provideServer(database *db.DB) handler.Server {
	return handler.New(
		provideConfig(),
		pool.Cache(providePoolStore(database), time.Second),
		provideLiquidityStore(database),
		provideClaimStore(database),
		provideDueStore(database),
		provideSystemStore(database),
		provideTransactionStore(database),
	)
}
