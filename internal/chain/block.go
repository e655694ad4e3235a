package chain

import (
	"context"
	"errors"
	"time"
)

// BlockAt block number at a point in time, counted from genesis
func BlockAt(ctx context.Context, secondsPerBlock, genesis int64, at time.Time) (int64, error) {
	if secondsPerBlock <= 0 {
		return 0, errors.New("secondsPerBlock should not be less than or equal zero")
	}

	seconds := at.Unix() - genesis
	if seconds <= 0 {
		return 0, errors.New("invalid blocks")
	}

	return seconds / secondsPerBlock, nil
}

// CurrentBlock current block
func CurrentBlock(ctx context.Context, secondsPerBlock, genesis int64) (int64, error) {
	return BlockAt(ctx, secondsPerBlock, genesis, time.Now().UTC())
}
