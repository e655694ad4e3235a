package sysversion

import (
	"context"
	"fmt"

	"github.com/fox-one/pkg/property"
)

const SysVersionKey = "sysversion"

// ReadSysVersion reads the data-format version the database was last
// written with.
func ReadSysVersion(ctx context.Context, store property.Store) (int64, error) {
	v, err := store.Get(ctx, SysVersionKey)
	if err != nil {
		return 0, err
	}
	return v.Int64(), nil
}

// Ensure refuses to run against data written by a newer release, and
// stamps the current version otherwise.
func Ensure(ctx context.Context, store property.Store, local int64) error {
	stored, err := ReadSysVersion(ctx, store)
	if err != nil {
		return err
	}

	if stored > local {
		return fmt.Errorf("sysversion: data version %d ahead of supported %d", stored, local)
	}

	if stored < local {
		return store.Save(ctx, SysVersionKey, local)
	}

	return nil
}
