package registry

import "crowdfund_dao/sdk"

// Record is what the registry remembers about a deployed campaign: the
// numeric id, the identities of the wired ledger pair, and who asked for it.
type Record struct {
	ID        uint64      `json:"id"`
	Name      string      `json:"name"`
	Creator   sdk.Address `json:"creator"`
	DAOID     sdk.Address `json:"dao"`
	TokenID   sdk.Address `json:"token"`
	CreatedAt int64       `json:"created_at"`
}
