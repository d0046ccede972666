package sdk

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Env is the call envelope the execution substrate hands to every exposed
// operation: who invoked it, which identities signed off on it, and the
// transaction it belongs to. Ledgers never mutate state without one.
type Env struct {
	// ContractID is the identity of the instance currently executing.
	ContractID Address
	// Caller is the identity that invoked the operation. For a cross-ledger
	// call this is the invoking instance, not the original user.
	Caller Address
	// RequiredAuths lists additional identities that authorized the call.
	RequiredAuths []Address
	TxID          string
	Timestamp     int64
}

// NewEnv builds a top-level envelope for a user-originated call. The tx id is
// generated locally; a real substrate would stamp its own.
// Example payload: sdk.NewEnv("hive:alice")
func NewEnv(caller Address) Env {
	return Env{
		Caller:        caller,
		RequiredAuths: []Address{caller},
		TxID:          uuid.NewString(),
		Timestamp:     time.Now().Unix(),
	}
}

// NewEnvAt is NewEnv with an explicit timestamp, for tests and replays.
func NewEnvAt(caller Address, ts int64) Env {
	e := NewEnv(caller)
	e.Timestamp = ts
	return e
}

// HasAuth reports whether identity has approved this call.
func (e Env) HasAuth(id Address) bool {
	if e.Caller == id {
		return true
	}
	for _, a := range e.RequiredAuths {
		if a == id {
			return true
		}
	}
	return false
}

// RequireAuth is the caller-identity authentication primitive: every mutating
// operation that names an actor verifies it before touching state.
func (e Env) RequireAuth(id Address) error {
	if id.IsZero() {
		return fmt.Errorf("%w: empty identity", ErrNotAuthenticated)
	}
	if !e.HasAuth(id) {
		return fmt.Errorf("%w: call not authorized by %s", ErrNotAuthenticated, id)
	}
	return nil
}

// SubCall derives the envelope for a synchronous cross-ledger call made by
// instance self while handling e. The tx context carries through; the caller
// and auths collapse to the invoking instance.
func (e Env) SubCall(self Address) Env {
	return Env{
		Caller:        self,
		RequiredAuths: []Address{self},
		TxID:          e.TxID,
		Timestamp:     e.Timestamp,
	}
}
