// Package distribution implements the pro-rata profit split: an external
// profit amount is divided across a campaign's investors by their share of
// the voting-weight token supply and paid out one transfer at a time.
package distribution

import (
	"fmt"
	"math/big"

	"go.uber.org/zap"

	"crowdfund_dao/dao"
	"crowdfund_dao/sdk"
)

// Distributor issues payouts from its own value-transfer account. It holds no
// per-round state; idempotence across retries is the caller's responsibility.
type Distributor struct {
	self     sdk.Address
	payments sdk.PaymentLedger
	lgr      *zap.Logger
}

// NewDistributor wires a distributor identity to the value-transfer ledger.
// The identity's account must be funded with the profit before Distribute.
func NewDistributor(self sdk.Address, payments sdk.PaymentLedger, lgr *zap.Logger) *Distributor {
	return &Distributor{
		self:     self,
		payments: payments,
		lgr:      lgr.With(zap.String("service", "distribution"), zap.String("instance", self.String())),
	}
}

// Distribute splits profit across ledger's investors pro-rata to their token
// balances, in investor-registration order.
//
// Each payout is floor(profit * balance / total_shares); the floor remainder
// is not redistributed and stays with the distributor. The batch is not
// atomic: a transfer failure leaves earlier payouts committed and returns the
// error. Investors whose balance dropped to zero are skipped, since the
// value-transfer ledger rejects zero-amount moves.
func (d *Distributor) Distribute(env sdk.Env, ledger *dao.Ledger, profit uint64) error {
	if profit == 0 {
		return fmt.Errorf("%w: nothing to distribute", sdk.ErrInvalidAmount)
	}
	token := ledger.Token()
	totalShares := token.TotalSupply()
	if totalShares == 0 {
		return fmt.Errorf("%w: campaign %s has no shares", sdk.ErrDivisionByZero, ledger.ID())
	}

	investors := ledger.Investors()
	shares := new(big.Int).SetInt64(totalShares)
	profitWide := new(big.Int).SetUint64(profit)

	var distributed uint64
	for _, inv := range investors {
		bal := token.Balance(inv)
		if bal <= 0 {
			continue
		}
		// Wide intermediate so profit*balance cannot overflow before the division.
		payout := new(big.Int).Mul(profitWide, big.NewInt(bal))
		payout.Quo(payout, shares)
		amount := payout.Uint64()
		if amount == 0 {
			continue
		}
		if err := d.payments.Transfer(env.SubCall(d.self), inv, amount); err != nil {
			return fmt.Errorf("distribute: payout to %s: %w", inv, err)
		}
		distributed += amount
	}

	if err := ledger.RecordDistribution(env.SubCall(d.self), uint64(env.Timestamp), profit); err != nil {
		return fmt.Errorf("distribute: record: %w", err)
	}
	d.lgr.Info("distributed",
		zap.String("campaign", ledger.ID().String()),
		zap.Uint64("profit", profit),
		zap.Uint64("paid", distributed),
		zap.Uint64("remainder", profit-distributed),
		zap.Int("investors", len(investors)),
	)
	return nil
}
