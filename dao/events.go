package dao

import (
	"go.uber.org/zap"

	"crowdfund_dao/sdk"
)

// Compact event entries so watchers can follow campaign activity without
// scanning state diffs. The short codes survive from the on-chain log format.

// emitInitialized writes a "ci" line once per campaign lifetime.
func (l *Ledger) emitInitialized(name string, creator sdk.Address) {
	l.lgr.Info("ci",
		zap.String("name", name),
		zap.String("by", creator.String()),
	)
}

// emitInvested pings every accepted investment with the new running total.
func (l *Ledger) emitInvested(investor sdk.Address, amount, total uint64) {
	l.lgr.Info("iv",
		zap.String("by", investor.String()),
		zap.Uint64("amount", amount),
		zap.Uint64("total", total),
	)
}

// emitProposalCreated keeps observers updated with a short pc line for every new idea.
func (l *Ledger) emitProposalCreated(id uint64, creator sdk.Address) {
	l.lgr.Info("pc",
		zap.Uint64("id", id),
		zap.String("by", creator.String()),
	)
}

// emitVote logs the applied weight and the resulting tally.
func (l *Ledger) emitVote(id uint64, voter sdk.Address, weight int64, support bool, tally int64) {
	l.lgr.Info("vt",
		zap.Uint64("id", id),
		zap.String("by", voter.String()),
		zap.Int64("w", weight),
		zap.Bool("support", support),
		zap.Int64("tally", tally),
	)
}

// emitProposalExecuted is the terminal state flip plus the pot movement.
func (l *Ledger) emitProposalExecuted(id uint64, to sdk.Address, pot uint64) {
	l.lgr.Info("px",
		zap.Uint64("id", id),
		zap.String("to", to.String()),
		zap.Uint64("pot", pot),
	)
}

// emitDistributionRecorded marks one appended audit log entry.
func (l *Ledger) emitDistributionRecorded(ts, amount uint64) {
	l.lgr.Info("dr",
		zap.Uint64("ts", ts),
		zap.Uint64("amount", amount),
	)
}
