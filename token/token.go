// Package token implements the voting-weight token ledger: a fungible
// accounting ledger with an administrative mint authority. Balances double as
// ownership share and vote magnitude for the investment ledger that owns the
// instance.
package token

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"crowdfund_dao/sdk"
)

// Ledger is one token instance. All mutation goes through the exposed
// operations; the mutex reproduces the substrate's per-instance call
// serialization so two operations never interleave.
type Ledger struct {
	mu    sync.Mutex
	state sdk.State
	self  sdk.Address
	lgr   *zap.Logger
}

// New wraps a keyed store as a token ledger addressed by self. Initialize
// must run before any other operation.
func New(state sdk.State, self sdk.Address, lgr *zap.Logger) *Ledger {
	return &Ledger{
		state: state,
		self:  self,
		lgr:   lgr.With(zap.String("service", "token"), zap.String("instance", self.String())),
	}
}

// ID returns the identity this instance is addressed by.
func (l *Ledger) ID() sdk.Address {
	return l.self
}

// Initialize sets the mint authority and zeroes the supply. Running it twice
// is a hard failure; the registry is expected to guard construction.
func (l *Ledger) Initialize(env sdk.Env, admin sdk.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.state.Get(adminKey) != nil {
		return fmt.Errorf("%w: token ledger", sdk.ErrAlreadyInitialized)
	}
	if admin.IsZero() {
		return fmt.Errorf("%w: empty admin identity", sdk.ErrNotAuthenticated)
	}
	l.state.Set(adminKey, admin.String())
	l.lgr.Info("initialized", zap.String("admin", admin.String()), zap.String("tx", env.TxID))
	return nil
}

// Admin returns the mint authority, or ErrNotFound before initialization.
func (l *Ledger) Admin() (sdk.Address, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.admin()
}

func (l *Ledger) admin() (sdk.Address, error) {
	ptr := l.state.Get(adminKey)
	if ptr == nil {
		return "", fmt.Errorf("%w: token ledger not initialized", sdk.ErrNotFound)
	}
	return sdk.Address(*ptr), nil
}

// Mint credits amount to to and grows the total supply. Only the admin (the
// investment ledger) may call it.
func (l *Ledger) Mint(env sdk.Env, to sdk.Address, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	admin, err := l.admin()
	if err != nil {
		return err
	}
	if err := env.RequireAuth(admin); err != nil {
		return fmt.Errorf("mint: %w", err)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: mint amount must be positive, got %d", sdk.ErrInvalidAmount, amount)
	}
	supply := l.readAmount(supplyKey)
	if supply > math.MaxInt64-amount {
		return fmt.Errorf("%w: mint %d onto supply %d", sdk.ErrAmountOverflow, amount, supply)
	}

	// Balances never exceed supply, so the balance add cannot overflow once
	// the supply add passed.
	l.writeAmount(supplyKey, supply+amount)
	l.writeAmount(balanceKey(to), l.readAmount(balanceKey(to))+amount)
	l.lgr.Debug("mint", zap.String("to", to.String()), zap.Int64("amount", amount), zap.String("tx", env.TxID))
	return nil
}

// Burn debits amount from from and shrinks the supply symmetrically with Mint.
func (l *Ledger) Burn(env sdk.Env, from sdk.Address, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := env.RequireAuth(from); err != nil {
		return fmt.Errorf("burn: %w", err)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: burn amount must be positive, got %d", sdk.ErrInvalidAmount, amount)
	}
	bal := l.readAmount(balanceKey(from))
	if bal < amount {
		return fmt.Errorf("%w: burn %d from balance %d", sdk.ErrInsufficientBalance, amount, bal)
	}

	l.writeAmount(balanceKey(from), bal-amount)
	l.writeAmount(supplyKey, l.readAmount(supplyKey)-amount)
	l.lgr.Debug("burn", zap.String("from", from.String()), zap.Int64("amount", amount), zap.String("tx", env.TxID))
	return nil
}

// Transfer moves amount from from to to; both sides update together or not at all.
func (l *Ledger) Transfer(env sdk.Env, from, to sdk.Address, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := env.RequireAuth(from); err != nil {
		return fmt.Errorf("transfer: %w", err)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: transfer amount must be positive, got %d", sdk.ErrInvalidAmount, amount)
	}
	return l.move(from, to, amount)
}

// move performs the checked two-sided balance update shared by Transfer and
// TransferFrom. Caller holds the lock.
func (l *Ledger) move(from, to sdk.Address, amount int64) error {
	bal := l.readAmount(balanceKey(from))
	if bal < amount {
		return fmt.Errorf("%w: move %d from balance %d", sdk.ErrInsufficientBalance, amount, bal)
	}
	// Self-transfer is a no-op once the balance check passed.
	if from == to {
		return nil
	}
	l.writeAmount(balanceKey(from), bal-amount)
	l.writeAmount(balanceKey(to), l.readAmount(balanceKey(to))+amount)
	return nil
}

// Approve sets (not increments) spender's allowance over owner's balance.
func (l *Ledger) Approve(env sdk.Env, owner, spender sdk.Address, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := env.RequireAuth(owner); err != nil {
		return fmt.Errorf("approve: %w", err)
	}
	if amount < 0 {
		return fmt.Errorf("%w: allowance must be non-negative, got %d", sdk.ErrInvalidAmount, amount)
	}
	l.writeAmount(allowanceKey(owner, spender), amount)
	l.lgr.Debug("approve",
		zap.String("owner", owner.String()),
		zap.String("spender", spender.String()),
		zap.Int64("amount", amount),
		zap.String("tx", env.TxID))
	return nil
}

// TransferFrom spends spender's allowance to move owner funds. The allowance
// and balance checks both pass before anything is written.
func (l *Ledger) TransferFrom(env sdk.Env, spender, from, to sdk.Address, amount int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := env.RequireAuth(spender); err != nil {
		return fmt.Errorf("transfer_from: %w", err)
	}
	if amount <= 0 {
		return fmt.Errorf("%w: transfer amount must be positive, got %d", sdk.ErrInvalidAmount, amount)
	}
	allowance := l.readAmount(allowanceKey(from, spender))
	if allowance < amount {
		return fmt.Errorf("%w: spend %d of allowance %d", sdk.ErrInsufficientAllowance, amount, allowance)
	}
	bal := l.readAmount(balanceKey(from))
	if bal < amount {
		return fmt.Errorf("%w: move %d from balance %d", sdk.ErrInsufficientBalance, amount, bal)
	}

	l.writeAmount(allowanceKey(from, spender), allowance-amount)
	if from != to {
		l.writeAmount(balanceKey(from), bal-amount)
		l.writeAmount(balanceKey(to), l.readAmount(balanceKey(to))+amount)
	}
	l.lgr.Debug("transfer_from",
		zap.String("spender", spender.String()),
		zap.String("from", from.String()),
		zap.String("to", to.String()),
		zap.Int64("amount", amount),
		zap.String("tx", env.TxID))
	return nil
}

// Balance is a pure read; unknown identities hold zero.
func (l *Ledger) Balance(who sdk.Address) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readAmount(balanceKey(who))
}

// TotalSupply equals the sum of all balances at all times.
func (l *Ledger) TotalSupply() int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readAmount(supplyKey)
}

// Allowance reads what spender may still move out of owner's balance.
func (l *Ledger) Allowance(owner, spender sdk.Address) int64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.readAmount(allowanceKey(owner, spender))
}
