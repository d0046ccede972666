// Package payment is the value-transfer ledger: a bank-account abstraction
// keyed by identity. Campaign treasuries and distributor accounts live here;
// the dao and distribution packages only consume the Transfer capability.
package payment

import (
	"fmt"
	"math"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"crowdfund_dao/sdk"
)

// Ledger keeps one balance per identity. It satisfies sdk.PaymentLedger.
type Ledger struct {
	mu    sync.Mutex
	state sdk.State
	lgr   *zap.Logger
}

// Compile-time interface check.
var _ sdk.PaymentLedger = (*Ledger)(nil)

func New(state sdk.State, lgr *zap.Logger) *Ledger {
	return &Ledger{
		state: state,
		lgr:   lgr.With(zap.String("service", "payment")),
	}
}

func accountKey(who sdk.Address) string {
	return "acct:" + who.String()
}

// getBalance reads an account and defaults to zero for unknown identities.
func (l *Ledger) getBalance(who sdk.Address) uint64 {
	ptr := l.state.Get(accountKey(who))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

func (l *Ledger) setBalance(who sdk.Address, n uint64) {
	if n == 0 {
		l.state.Delete(accountKey(who))
		return
	}
	l.state.Set(accountKey(who), strconv.FormatUint(n, 10))
}

// Deposit credits addr's own account. Models funds entering the system from
// outside; requires addr's authorization.
func (l *Ledger) Deposit(env sdk.Env, addr sdk.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := env.RequireAuth(addr); err != nil {
		return fmt.Errorf("deposit: %w", err)
	}
	if amount == 0 {
		return fmt.Errorf("%w: deposit must be positive", sdk.ErrInvalidAmount)
	}
	bal := l.getBalance(addr)
	if bal > math.MaxUint64-amount {
		return fmt.Errorf("%w: deposit %d onto balance %d", sdk.ErrAmountOverflow, amount, bal)
	}
	l.setBalance(addr, bal+amount)
	return nil
}

// Transfer moves amount from the calling identity's account to to. This is
// how a campaign pays its creator and a distributor pays investors: the
// moving side is always env.Caller.
func (l *Ledger) Transfer(env sdk.Env, to sdk.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if amount == 0 {
		return fmt.Errorf("%w: transfer must be positive", sdk.ErrInvalidAmount)
	}
	from := env.Caller
	bal := l.getBalance(from)
	if bal < amount {
		return fmt.Errorf("%w: transfer %d from account %s holding %d", sdk.ErrInsufficientBalance, amount, from, bal)
	}
	if from == to {
		return nil
	}
	toBal := l.getBalance(to)
	if toBal > math.MaxUint64-amount {
		return fmt.Errorf("%w: transfer %d onto balance %d", sdk.ErrAmountOverflow, amount, toBal)
	}
	l.setBalance(from, bal-amount)
	l.setBalance(to, toBal+amount)
	l.lgr.Debug("transfer",
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.Uint64("amount", amount),
		zap.String("tx", env.TxID))
	return nil
}

// Withdraw debits addr's account back out of the system.
func (l *Ledger) Withdraw(env sdk.Env, addr sdk.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := env.RequireAuth(addr); err != nil {
		return fmt.Errorf("withdraw: %w", err)
	}
	if amount == 0 {
		return fmt.Errorf("%w: withdrawal must be positive", sdk.ErrInvalidAmount)
	}
	bal := l.getBalance(addr)
	if bal < amount {
		return fmt.Errorf("%w: withdraw %d from balance %d", sdk.ErrInsufficientBalance, amount, bal)
	}
	l.setBalance(addr, bal-amount)
	return nil
}

// Balance is a pure read; unknown identities hold zero.
func (l *Ledger) Balance(who sdk.Address) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.getBalance(who)
}
