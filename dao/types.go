package dao

import "crowdfund_dao/sdk"

// Campaign holds the immutable facts set once at initialization. Stored as a
// JSON record under the campaign key; the moving totals live under their own
// keys.
type Campaign struct {
	Name        string      `json:"name"`
	Description string      `json:"desc"`
	FundingGoal uint64      `json:"goal"`
	Creator     sdk.Address `json:"creator"`
	TokenID     sdk.Address `json:"token"`
}

// Proposal - stored separately at prpsl:<id>. The tally is a signed running
// sum of vote weights; Executed is terminal and never flips back.
type Proposal struct {
	ID        uint64 `json:"id"`
	Details   string `json:"details"`
	Tally     int64  `json:"tally"`
	Executed  bool   `json:"executed"`
	CreatedAt int64  `json:"created_at"`
	TxID      string `json:"tx_id,omitempty"`
}

// DistributionRecord is one entry of the append-only profit-distribution
// audit log.
type DistributionRecord struct {
	Timestamp uint64 `json:"ts"`
	Amount    uint64 `json:"amount"`
}
