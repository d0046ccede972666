package dao

import (
	"fmt"
	"strconv"

	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"crowdfund_dao/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Instance state persistence helpers
////////////////////////////////////////////////////////////////////////////////

// State keys. Structured records are tinyjson blobs, scalars decimal strings,
// the investor set a JSON string array under a single index key.
const (
	campaignKey  = "campaign"
	raisedKey    = "raised"
	investorsKey = "investors"

	// ProposalsCount holds an integer counter for proposals (used for assigning IDs).
	proposalsCountKey = "count:prpsl"
	// DistributionsCount holds an integer counter for distribution log entries.
	distributionsCountKey = "count:dist"
)

func proposalKey(id uint64) string {
	return "prpsl:" + strconv.FormatUint(id, 10)
}

func investmentKey(who sdk.Address) string {
	return "invest:" + who.String()
}

func distributionKey(n uint64) string {
	return "dist:" + strconv.FormatUint(n, 10)
}

// getCount reads the string counter under the key and defaults to zero.
func (l *Ledger) getCount(key string) uint64 {
	ptr := l.state.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the kv store.
func (l *Ledger) setCount(key string, n uint64) {
	l.state.Set(key, strconv.FormatUint(n, 10))
}

// getRaised reads the treasury total; absent means no accepted investment yet.
func (l *Ledger) getRaised() uint64 {
	return l.getCount(raisedKey)
}

func (l *Ledger) setRaised(n uint64) {
	l.setCount(raisedKey, n)
}

// getInvestment reads the cumulative contribution for one identity.
func (l *Ledger) getInvestment(who sdk.Address) uint64 {
	return l.getCount(investmentKey(who))
}

func (l *Ledger) setInvestment(who sdk.Address, n uint64) {
	if n == 0 {
		l.state.Delete(investmentKey(who))
		return
	}
	l.setCount(investmentKey(who), n)
}

func (l *Ledger) saveCampaign(c *Campaign) {
	b, err := c.MarshalJSON()
	if err != nil {
		panic(fmt.Errorf("dao: marshal campaign: %w", err))
	}
	l.state.Set(campaignKey, string(b))
}

// loadCampaign returns nil when the instance was never initialized.
func (l *Ledger) loadCampaign() *Campaign {
	ptr := l.state.Get(campaignKey)
	if ptr == nil {
		return nil
	}
	var c Campaign
	if err := c.UnmarshalJSON([]byte(*ptr)); err != nil {
		panic(fmt.Errorf("dao: unmarshal campaign: %w", err))
	}
	return &c
}

func (l *Ledger) saveProposal(prpsl *Proposal) {
	b, err := prpsl.MarshalJSON()
	if err != nil {
		panic(fmt.Errorf("dao: marshal proposal %d: %w", prpsl.ID, err))
	}
	l.state.Set(proposalKey(prpsl.ID), string(b))
}

func (l *Ledger) loadProposal(id uint64) (*Proposal, error) {
	ptr := l.state.Get(proposalKey(id))
	if ptr == nil {
		return nil, fmt.Errorf("%w: proposal %d", sdk.ErrNotFound, id)
	}
	var prpsl Proposal
	if err := prpsl.UnmarshalJSON([]byte(*ptr)); err != nil {
		return nil, fmt.Errorf("dao: unmarshal proposal %d: %w", id, err)
	}
	return &prpsl, nil
}

func (l *Ledger) saveDistribution(n uint64, rec *DistributionRecord) {
	b, err := rec.MarshalJSON()
	if err != nil {
		panic(fmt.Errorf("dao: marshal distribution %d: %w", n, err))
	}
	l.state.Set(distributionKey(n), string(b))
}

func (l *Ledger) loadDistribution(n uint64) *DistributionRecord {
	ptr := l.state.Get(distributionKey(n))
	if ptr == nil {
		return nil
	}
	var rec DistributionRecord
	if err := rec.UnmarshalJSON([]byte(*ptr)); err != nil {
		panic(fmt.Errorf("dao: unmarshal distribution %d: %w", n, err))
	}
	return &rec
}

// loadInvestors returns the investor set in first-investment order.
func (l *Ledger) loadInvestors() []sdk.Address {
	ptr := l.state.Get(investorsKey)
	if ptr == nil || *ptr == "" {
		return []sdk.Address{}
	}
	return decodeAddressList(*ptr)
}

func (l *Ledger) saveInvestors(invs []sdk.Address) {
	l.state.Set(investorsKey, encodeAddressList(invs))
}

// encodeAddressList writes the ordered set as a plain JSON string array.
func encodeAddressList(invs []sdk.Address) string {
	w := jwriter.Writer{}
	w.RawByte('[')
	for i, inv := range invs {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(inv.String())
	}
	w.RawByte(']')
	b, err := w.BuildBytes()
	if err != nil {
		panic(fmt.Errorf("dao: encode investor index: %w", err))
	}
	return string(b)
}

func decodeAddressList(data string) []sdk.Address {
	in := jlexer.Lexer{Data: []byte(data)}
	out := []sdk.Address{}
	in.Delim('[')
	for !in.IsDelim(']') {
		out = append(out, sdk.Address(in.String()))
		in.WantComma()
	}
	in.Delim(']')
	in.Consumed()
	if err := in.Error(); err != nil {
		panic(fmt.Errorf("dao: decode investor index: %w", err))
	}
	return out
}
