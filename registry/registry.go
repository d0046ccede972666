// Package registry deploys and tracks campaigns: for every request it wires
// a fresh token ledger and investment ledger together, assigns a numeric id,
// and keeps a lookup table. It is the construct-then-initialize seam between
// embedders and the core.
package registry

import (
	"fmt"
	"io"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"crowdfund_dao/cfg"
	"crowdfund_dao/dao"
	"crowdfund_dao/payment"
	"crowdfund_dao/sdk"
	"crowdfund_dao/token"
)

// DefaultPageLimit bounds List pages when the caller passes no limit.
const DefaultPageLimit = 25

// Registry hands out wired ledger pairs and answers lookups. Live instances
// are cached; with a durable StateProvider a reopened registry rehydrates
// them from their persisted state on first lookup.
type Registry struct {
	mu        sync.Mutex
	state     sdk.State
	states    sdk.StateProvider
	payments  sdk.PaymentLedger
	lgr       *zap.Logger
	pageLimit int
	daos      map[uint64]*dao.Ledger
	closer    io.Closer
}

// New builds a registry over the given state provider. The payment ledger is
// injected into every campaign the registry creates.
func New(states sdk.StateProvider, payments sdk.PaymentLedger, lgr *zap.Logger) (*Registry, error) {
	st, err := states.State("registry")
	if err != nil {
		return nil, fmt.Errorf("registry: state: %w", err)
	}
	return &Registry{
		state:     st,
		states:    states,
		payments:  payments,
		lgr:       lgr.With(zap.String("service", "registry")),
		pageLimit: DefaultPageLimit,
		daos:      make(map[uint64]*dao.Ledger),
	}, nil
}

// FromConfig picks the storage driver from the config and wires a registry
// plus the shared payment ledger. Close releases the bolt handle in bolt mode.
func FromConfig(c cfg.Config, lgr *zap.Logger) (*Registry, *payment.Ledger, error) {
	var (
		provider sdk.StateProvider
		closer   io.Closer
	)
	switch c.StorageDriver {
	case cfg.StorageBolt:
		store, err := sdk.OpenBoltStore(c.StoragePath)
		if err != nil {
			return nil, nil, err
		}
		provider = store
		closer = store
	default:
		provider = sdk.NewMemStore()
	}

	payState, err := provider.State("payment")
	if err != nil {
		return nil, nil, fmt.Errorf("registry: payment state: %w", err)
	}
	pay := payment.New(payState, lgr)

	r, err := New(provider, pay, lgr)
	if err != nil {
		return nil, nil, err
	}
	if c.PageLimit > 0 {
		r.pageLimit = c.PageLimit
	}
	r.closer = closer
	return r, pay, nil
}

// Close releases the underlying store if the registry owns one.
func (r *Registry) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func daoAddress(id uint64) sdk.Address {
	return sdk.Address("contract:dao:" + strconv.FormatUint(id, 10))
}

func tokenAddress(id uint64) sdk.Address {
	return sdk.Address("contract:token:" + strconv.FormatUint(id, 10))
}

// CreateDAO deploys a token ledger and an investment ledger, initializes the
// token with the campaign's identity as mint authority, initializes the
// campaign, and records the pair under a fresh numeric id.
func (r *Registry) CreateDAO(env sdk.Env, name, description string, fundingGoal uint64, creator sdk.Address) (uint64, *dao.Ledger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if creator.IsZero() {
		return 0, nil, fmt.Errorf("%w: empty creator identity", sdk.ErrNotAuthenticated)
	}

	id := r.getCount(daosCountKey)
	tok, d, err := r.wire(id)
	if err != nil {
		return 0, nil, err
	}
	if err := tok.Initialize(env, daoAddress(id)); err != nil {
		return 0, nil, fmt.Errorf("registry: init token %d: %w", id, err)
	}
	if err := d.Initialize(env, name, description, fundingGoal, creator); err != nil {
		return 0, nil, fmt.Errorf("registry: init dao %d: %w", id, err)
	}

	r.saveRecord(&Record{
		ID:        id,
		Name:      name,
		Creator:   creator,
		DAOID:     daoAddress(id),
		TokenID:   tokenAddress(id),
		CreatedAt: env.Timestamp,
	})
	r.addIDToIndex(creatorIndexKey(creator), id)
	r.setCount(daosCountKey, id+1)
	r.daos[id] = d

	r.lgr.Info("dc",
		zap.Uint64("id", id),
		zap.String("by", creator.String()),
		zap.String("name", name),
	)
	return id, d, nil
}

// wire builds the in-memory instance pair for id over their named states.
func (r *Registry) wire(id uint64) (*token.Ledger, *dao.Ledger, error) {
	tokenState, err := r.states.State("token:" + strconv.FormatUint(id, 10))
	if err != nil {
		return nil, nil, fmt.Errorf("registry: token state %d: %w", id, err)
	}
	daoState, err := r.states.State("dao:" + strconv.FormatUint(id, 10))
	if err != nil {
		return nil, nil, fmt.Errorf("registry: dao state %d: %w", id, err)
	}
	tok := token.New(tokenState, tokenAddress(id), r.lgr)
	return tok, dao.New(daoState, daoAddress(id), tok, r.payments, r.lgr), nil
}

// DAO returns the live campaign instance for id, rehydrating it from
// persisted state when the registry was reopened. Unknown ids fail with
// ErrNotFound; there is no default-instance fallback.
func (r *Registry) DAO(id uint64) (*dao.Ledger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if d, ok := r.daos[id]; ok {
		return d, nil
	}
	if _, err := r.loadRecord(id); err != nil {
		return nil, err
	}
	_, d, err := r.wire(id)
	if err != nil {
		return nil, err
	}
	r.daos[id] = d
	return d, nil
}

// Get returns the stored record for id, or ErrNotFound.
func (r *Registry) Get(id uint64) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, err := r.loadRecord(id)
	if err != nil {
		return Record{}, err
	}
	return *rec, nil
}

// Count reports how many campaigns were ever created.
func (r *Registry) Count() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.getCount(daosCountKey)
}

// List returns records [offset, offset+limit) in creation order. A
// non-positive limit falls back to the configured page size.
func (r *Registry) List(offset uint64, limit int) []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	if limit <= 0 {
		limit = r.pageLimit
	}
	total := r.getCount(daosCountKey)
	out := make([]Record, 0, limit)
	for id := offset; id < total && len(out) < limit; id++ {
		rec, err := r.loadRecord(id)
		if err != nil {
			continue
		}
		out = append(out, *rec)
	}
	return out
}

// ByCreator returns every record created by the given identity, oldest first.
func (r *Registry) ByCreator(creator sdk.Address) []Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := r.getIDsFromIndex(creatorIndexKey(creator))
	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		rec, err := r.loadRecord(id)
		if err != nil {
			continue
		}
		out = append(out, *rec)
	}
	return out
}
