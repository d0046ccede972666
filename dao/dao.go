// Package dao implements the investment & proposal ledger: the treasury
// totals, the investor set, and the proposal state machine. Voting weight is
// never owned here; it is read from the token ledger the instance was wired
// to at creation, and payouts go out through the value-transfer ledger.
package dao

import (
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"crowdfund_dao/sdk"
)

// TokenLedger is the capability surface the investment ledger consumes from
// its voting-weight token: mint on investment, balance reads when tallying.
type TokenLedger interface {
	ID() sdk.Address
	Mint(env sdk.Env, to sdk.Address, amount int64) error
	Balance(who sdk.Address) int64
	TotalSupply() int64
}

// Ledger is one campaign instance. The mutex reproduces the substrate's
// per-instance call serialization; cross-instance calls (token mint, payout)
// are synchronous and fail the whole enclosing operation on error.
type Ledger struct {
	mu       sync.Mutex
	state    sdk.State
	self     sdk.Address
	token    TokenLedger
	payments sdk.PaymentLedger
	lgr      *zap.Logger
}

// New wires a campaign instance to its collaborators. The token reference is
// fixed for the lifetime of the instance; Initialize records the rest.
func New(state sdk.State, self sdk.Address, token TokenLedger, payments sdk.PaymentLedger, lgr *zap.Logger) *Ledger {
	return &Ledger{
		state:    state,
		self:     self,
		token:    token,
		payments: payments,
		lgr:      lgr.With(zap.String("service", "dao"), zap.String("instance", self.String())),
	}
}

// ID returns the identity this instance is addressed by. Payouts leave the
// value-transfer ledger account held under this identity.
func (l *Ledger) ID() sdk.Address {
	return l.self
}

// Token exposes the voting-weight backend for the distribution routine.
func (l *Ledger) Token() TokenLedger {
	return l.token
}

// Initialize performs the one-time setup: display strings, funding goal and
// creator. All counters start at zero, all collections empty.
func (l *Ledger) Initialize(env sdk.Env, name, description string, fundingGoal uint64, creator sdk.Address) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loadCampaign() != nil {
		return fmt.Errorf("%w: campaign %s", sdk.ErrAlreadyInitialized, l.self)
	}
	if creator.IsZero() {
		return fmt.Errorf("%w: empty creator identity", sdk.ErrNotAuthenticated)
	}
	l.saveCampaign(&Campaign{
		Name:        name,
		Description: description,
		FundingGoal: fundingGoal,
		Creator:     creator,
		TokenID:     l.token.ID(),
	})
	l.emitInitialized(name, creator)
	return nil
}

// Invest accepts funds from investor, records the contribution, and mints the
// same amount of voting-weight tokens. The mint is the last step; if it fails
// the local bookkeeping is rolled back so the call is all-or-nothing.
func (l *Ledger) Invest(env sdk.Env, investor sdk.Address, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := env.RequireAuth(investor); err != nil {
		return fmt.Errorf("invest: %w", err)
	}
	if amount == 0 {
		return fmt.Errorf("%w: investment must be positive", sdk.ErrInvalidAmount)
	}
	if amount > math.MaxInt64 {
		return fmt.Errorf("%w: investment %d exceeds mintable range", sdk.ErrAmountOverflow, amount)
	}
	if l.loadCampaign() == nil {
		return fmt.Errorf("%w: campaign not initialized", sdk.ErrNotFound)
	}

	raised := l.getRaised()
	if raised > math.MaxUint64-amount {
		return fmt.Errorf("%w: invest %d onto total %d", sdk.ErrAmountOverflow, amount, raised)
	}
	prev := l.getInvestment(investor)

	invs := l.loadInvestors()
	newInvestor := true
	for _, inv := range invs {
		if inv == investor {
			newInvestor = false
			break
		}
	}

	l.setRaised(raised + amount)
	l.setInvestment(investor, prev+amount)
	if newInvestor {
		l.saveInvestors(append(invs, investor))
	}

	// Remote mint last, so a failure is detected with known prior state and
	// the local writes above can be restored.
	if err := l.token.Mint(env.SubCall(l.self), investor, int64(amount)); err != nil {
		l.setRaised(raised)
		l.setInvestment(investor, prev)
		if newInvestor {
			l.saveInvestors(invs)
		}
		return fmt.Errorf("invest: mint: %w", err)
	}

	l.emitInvested(investor, amount, raised+amount)
	return nil
}

// CreateProposal stores details under a fresh id and returns it. Deliberately
// open to any caller; restriction belongs to a higher layer.
func (l *Ledger) CreateProposal(env sdk.Env, details string) (uint64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loadCampaign() == nil {
		return 0, fmt.Errorf("%w: campaign not initialized", sdk.ErrNotFound)
	}
	id := l.getCount(proposalsCountKey)
	l.saveProposal(&Proposal{
		ID:        id,
		Details:   details,
		Tally:     0,
		Executed:  false,
		CreatedAt: env.Timestamp,
		TxID:      env.TxID,
	})
	l.setCount(proposalsCountKey, id+1)
	l.emitProposalCreated(id, env.Caller)
	return id, nil
}

// Vote applies voter's current token balance to the proposal tally, for or
// against. Votes are not tracked per voter: a repeat call re-applies the
// current balance on top of the previous one.
func (l *Ledger) Vote(env sdk.Env, voter sdk.Address, proposalID uint64, support bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := env.RequireAuth(voter); err != nil {
		return fmt.Errorf("vote: %w", err)
	}
	prpsl, err := l.loadProposal(proposalID)
	if err != nil {
		return err
	}
	if prpsl.Executed {
		return fmt.Errorf("%w: proposal %d", sdk.ErrAlreadyExecuted, proposalID)
	}
	w := l.token.Balance(voter)
	if w <= 0 {
		return fmt.Errorf("%w: %s holds no voting power", sdk.ErrInvalidAmount, voter)
	}
	if support {
		if prpsl.Tally > math.MaxInt64-w {
			return fmt.Errorf("%w: tally", sdk.ErrAmountOverflow)
		}
		prpsl.Tally += w
	} else {
		if prpsl.Tally < math.MinInt64+w {
			return fmt.Errorf("%w: tally", sdk.ErrAmountOverflow)
		}
		prpsl.Tally -= w
	}
	l.saveProposal(prpsl)
	l.emitVote(proposalID, voter, w, support, prpsl.Tally)
	return nil
}

// ExecuteProposal pays out an approved proposal and marks it terminal. The
// payout moves the entire treasury-to-date to the creator; this whole-pot
// policy is intentional, so a second approved proposal would attempt the same
// amount again and succeeds only if the bank account still covers it.
func (l *Ledger) ExecuteProposal(env sdk.Env, proposalID uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	prpsl, err := l.loadProposal(proposalID)
	if err != nil {
		return err
	}
	if prpsl.Executed {
		return fmt.Errorf("%w: proposal %d", sdk.ErrAlreadyExecuted, proposalID)
	}
	if prpsl.Tally <= 0 {
		return fmt.Errorf("%w: proposal %d tally %d", sdk.ErrNotApproved, proposalID, prpsl.Tally)
	}
	c := l.loadCampaign()
	if c == nil {
		return fmt.Errorf("%w: campaign not initialized", sdk.ErrNotFound)
	}
	pot := l.getRaised()
	if err := l.payments.Transfer(env.SubCall(l.self), c.Creator, pot); err != nil {
		return fmt.Errorf("execute: payout: %w", err)
	}
	prpsl.Executed = true
	l.saveProposal(prpsl)
	l.emitProposalExecuted(proposalID, c.Creator, pot)
	return nil
}

// RecordDistribution appends one entry to the profit-distribution audit log.
// No caller restriction at this layer; the distributor is the expected writer.
func (l *Ledger) RecordDistribution(env sdk.Env, timestamp, amount uint64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.loadCampaign() == nil {
		return fmt.Errorf("%w: campaign not initialized", sdk.ErrNotFound)
	}
	n := l.getCount(distributionsCountKey)
	l.saveDistribution(n, &DistributionRecord{Timestamp: timestamp, Amount: amount})
	l.setCount(distributionsCountKey, n+1)
	l.emitDistributionRecorded(timestamp, amount)
	return nil
}

// DistributionHistory returns the audit log in append order.
func (l *Ledger) DistributionHistory() []DistributionRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := l.getCount(distributionsCountKey)
	out := make([]DistributionRecord, 0, n)
	for i := uint64(0); i < n; i++ {
		if rec := l.loadDistribution(i); rec != nil {
			out = append(out, *rec)
		}
	}
	return out
}

////////////////////////////////////////////////////////////////////////////////
// Read accessors: pure projections of instance state
////////////////////////////////////////////////////////////////////////////////

// Info returns the immutable campaign record set at initialization.
func (l *Ledger) Info() (Campaign, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := l.loadCampaign()
	if c == nil {
		return Campaign{}, fmt.Errorf("%w: campaign not initialized", sdk.ErrNotFound)
	}
	return *c, nil
}

// TotalRaised is the monotonically non-decreasing sum of accepted investments.
func (l *Ledger) TotalRaised() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.getRaised()
}

// Investors lists each distinct investing identity once, in first-investment order.
func (l *Ledger) Investors() []sdk.Address {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadInvestors()
}

// Investment reads one identity's cumulative contribution, zero for strangers.
func (l *Ledger) Investment(who sdk.Address) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.getInvestment(who)
}

// Investments materializes the per-investor contribution map.
func (l *Ledger) Investments() map[sdk.Address]uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[sdk.Address]uint64)
	for _, inv := range l.loadInvestors() {
		out[inv] = l.getInvestment(inv)
	}
	return out
}

// VotingPower is the current token balance, read through the token reference.
func (l *Ledger) VotingPower(who sdk.Address) int64 {
	return l.token.Balance(who)
}

// IsFundingGoalReached is total_raised >= funding_goal.
func (l *Ledger) IsFundingGoalReached() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := l.loadCampaign()
	if c == nil {
		return false
	}
	return l.getRaised() >= c.FundingGoal
}

// Proposal returns the stored proposal or ErrNotFound.
func (l *Ledger) Proposal(id uint64) (Proposal, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	prpsl, err := l.loadProposal(id)
	if err != nil {
		return Proposal{}, err
	}
	return *prpsl, nil
}

// ProposalCount returns how many proposals were ever created.
func (l *Ledger) ProposalCount() uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.getCount(proposalsCountKey)
}
