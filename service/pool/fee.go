package pool

import (
	"context"

	"tenor/core"

	"github.com/fox-one/pkg/logger"
	"github.com/fox-one/pkg/store/db"
)

// CollectProtocolFee drains the protocol-fee accumulator to the recipient.
// Admin only.
func (s *poolService) CollectProtocolFee(ctx context.Context, caller, recipient string) (core.Uint, error) {
	log := logger.FromContext(ctx).WithField("operation", "collect_protocol_fee")

	if err := requireRecipients(recipient); err != nil {
		return core.Uint{}, err
	}
	if !s.cfg.IsAdmin(caller) {
		return core.Uint{}, core.ErrForbidden
	}

	system, err := s.systems.Get(ctx)
	if err != nil {
		return core.Uint{}, err
	}

	out := system.ProtocolFeeStored
	system.ProtocolFeeStored = core.NewUint(0)

	if err := s.db.Tx(func(tx *db.DB) error {
		if err := s.systems.Save(ctx, tx, system); err != nil {
			return err
		}

		if err := s.journal(ctx, tx, core.ActionCollectProtocolFee, 0, caller, out, core.NewUint(0), nil); err != nil {
			return err
		}

		if out.IsZero() {
			return nil
		}

		return s.custodian.TransferAsset(ctx, recipient, out)
	}); err != nil {
		return core.Uint{}, err
	}

	log.Infoln("collected protocol fee", out)

	return out, nil
}
