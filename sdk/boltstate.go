package sdk

import (
	"fmt"
	"os"
	"path/filepath"

	"go.etcd.io/bbolt"
)

// BoltStore wraps a bbolt database and hands out one State per ledger
// instance, each backed by its own bucket.
type BoltStore struct {
	db *bbolt.DB
}

// OpenBoltStore opens or creates the bbolt database at dbPath. The parent
// directory is created if it does not exist.
func OpenBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("state: create directory: %w", err)
	}
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("state: open bolt db: %w", err)
	}
	return &BoltStore{db: db}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error { return s.db.Close() }

// Compile-time interface check.
var _ StateProvider = (*BoltStore)(nil)

// State returns the keyed store for the named instance, creating its bucket
// on first use.
func (s *BoltStore) State(name string) (State, error) {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(name))
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("state: create bucket %q: %w", name, err)
	}
	return &BoltState{db: s.db, bucket: []byte(name)}, nil
}

// BoltState is a State view over a single bucket. The State interface carries
// no error returns (the substrate model treats storage as infallible), so an
// I/O failure here is unrecoverable and panics.
type BoltState struct {
	db     *bbolt.DB
	bucket []byte
}

// Compile-time interface check.
var _ State = (*BoltState)(nil)

func (s *BoltState) Set(key, value string) {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Put([]byte(key), []byte(value))
	})
	if err != nil {
		panic(fmt.Errorf("state: put %q: %w", key, err))
	}
}

func (s *BoltState) Get(key string) *string {
	var out *string
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(s.bucket).Get([]byte(key))
		if v != nil {
			val := string(v)
			out = &val
		}
		return nil
	})
	if err != nil {
		panic(fmt.Errorf("state: get %q: %w", key, err))
	}
	return out
}

func (s *BoltState) Delete(key string) {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(s.bucket).Delete([]byte(key))
	})
	if err != nil {
		panic(fmt.Errorf("state: delete %q: %w", key, err))
	}
}
