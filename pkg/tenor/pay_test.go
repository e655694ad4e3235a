package tenor

import (
	"testing"
	"time"

	"tenor/core"

	"github.com/bmizerany/assert"
)

func TestCheckPay(t *testing.T) {
	due := &core.Due{
		Debt:       core.NewUint(100),
		Collateral: core.NewUint(50),
		StartBlock: 10,
	}

	assert.Equal(t, core.ErrSameBlock, CheckPay(due, u(50), u(0), 10, true))
	assert.Equal(t, core.ErrCollateralNotOwned, CheckPay(due, u(50), u(1), 11, false))
	assert.Equal(t, core.ErrAmountUnderflow, CheckPay(due, u(150), u(0), 11, true))
	assert.Equal(t, core.ErrAmountUnderflow, CheckPay(due, u(0), u(60), 11, true))

	// 50*50 < 30*100
	assert.Equal(t, core.ErrRatioExceeded, CheckPay(due, u(50), u(30), 11, true))

	// exactly proportional
	assert.Equal(t, nil, CheckPay(due, u(50), u(25), 11, true))

	// third party repay without touching collateral
	assert.Equal(t, nil, CheckPay(due, u(50), u(0), 11, false))
}

func TestDuration(t *testing.T) {
	now := time.Unix(1700000000, 0)

	d, err := Duration(1700000100, now)
	assert.Equal(t, nil, err)
	assert.Equal(t, uint32(100), d)

	_, err = Duration(1700000000, now)
	assert.Equal(t, core.ErrMatured, err)

	_, err = Duration(1700000000+(1<<33), now)
	assert.Equal(t, core.ErrDurationOverflow, err)

	assert.Equal(t, core.ErrNotMatured, CheckMatured(1700000100, now))
	assert.Equal(t, nil, CheckMatured(1700000000, now))
}
