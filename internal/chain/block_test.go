package chain

import (
	"context"
	"testing"
	"time"
)

func TestBlockAt(t *testing.T) {
	genesis := int64(1603366002)

	block, e := BlockAt(context.Background(), 15, genesis, time.Unix(genesis+150, 0))
	if e != nil {
		t.Error(e)
	}

	if block != 10 {
		t.Error("unexpected block:", block)
	}

	if _, e := BlockAt(context.Background(), 0, genesis, time.Unix(genesis+150, 0)); e == nil {
		t.Error("expected error for zero secondsPerBlock")
	}
}

func TestCurrentBlock(t *testing.T) {
	currentBlock, e := CurrentBlock(context.Background(), 15, 1603366002)
	if e != nil {
		t.Error(e)
	}

	t.Log("currentBlock:", currentBlock)
}
