package registry

// maintaining record keys and index keys for querying campaigns in various ways

import (
	"fmt"
	"strconv"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"crowdfund_dao/sdk"
)

const (
	// DAOsCount holds an integer counter for campaigns (used for assigning IDs).
	daosCountKey = "count:dao"
)

func recordKey(id uint64) string {
	return "dao:" + strconv.FormatUint(id, 10)
}

func creatorIndexKey(creator sdk.Address) string {
	return "creator:" + creator.String()
}

func (r *Registry) getCount(key string) uint64 {
	ptr := r.state.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

func (r *Registry) setCount(key string, n uint64) {
	r.state.Set(key, strconv.FormatUint(n, 10))
}

func (r *Registry) saveRecord(rec *Record) {
	b, err := rec.MarshalJSON()
	if err != nil {
		panic(fmt.Errorf("registry: marshal record %d: %w", rec.ID, err))
	}
	r.state.Set(recordKey(rec.ID), string(b))
}

func (r *Registry) loadRecord(id uint64) (*Record, error) {
	ptr := r.state.Get(recordKey(id))
	if ptr == nil {
		return nil, fmt.Errorf("%w: dao %d", sdk.ErrNotFound, id)
	}
	var rec Record
	if err := rec.UnmarshalJSON([]byte(*ptr)); err != nil {
		return nil, fmt.Errorf("registry: unmarshal record %d: %w", id, err)
	}
	return &rec, nil
}

// addIDToIndex appends id to the list under baseKey, skipping duplicates.
func (r *Registry) addIDToIndex(baseKey string, id uint64) {
	ids := r.getIDsFromIndex(baseKey)
	for _, e := range ids {
		if e == id {
			return
		}
	}
	ids = append(ids, id)
	r.state.Set(baseKey, encodeIDList(ids))
}

// getIDsFromIndex collects all IDs stored under baseKey.
func (r *Registry) getIDsFromIndex(baseKey string) []uint64 {
	ptr := r.state.Get(baseKey)
	if ptr == nil || *ptr == "" {
		return []uint64{}
	}
	return decodeIDList(*ptr)
}

func encodeIDList(ids []uint64) string {
	w := jwriter.Writer{}
	w.RawByte('[')
	for i, id := range ids {
		if i > 0 {
			w.RawByte(',')
		}
		w.Uint64(id)
	}
	w.RawByte(']')
	b, err := w.BuildBytes()
	if err != nil {
		panic(fmt.Errorf("registry: encode id index: %w", err))
	}
	return string(b)
}

func decodeIDList(data string) []uint64 {
	in := jlexer.Lexer{Data: []byte(data)}
	out := []uint64{}
	in.Delim('[')
	for !in.IsDelim(']') {
		out = append(out, in.Uint64())
		in.WantComma()
	}
	in.Delim(']')
	in.Consumed()
	if err := in.Error(); err != nil {
		panic(fmt.Errorf("registry: decode id index: %w", err))
	}
	return out
}
