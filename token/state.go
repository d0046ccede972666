package token

import (
	"strconv"

	"crowdfund_dao/sdk"
)

// State keys. Scalars are stored as decimal strings; there are no structured
// records in this ledger.
const (
	adminKey  = "admin"
	supplyKey = "supply"
)

func balanceKey(who sdk.Address) string {
	return "bal:" + who.String()
}

func allowanceKey(owner, spender sdk.Address) string {
	return "allow:" + owner.String() + ":" + spender.String()
}

// readAmount reads the int64 under key and defaults to zero, nothing magical here.
func (l *Ledger) readAmount(key string) int64 {
	ptr := l.state.Get(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseInt(*ptr, 10, 64)
	return n
}

// writeAmount stores the int64 back as decimal text, deleting the key when it
// reaches zero so unknown and emptied identities read the same.
func (l *Ledger) writeAmount(key string, n int64) {
	if n == 0 {
		l.state.Delete(key)
		return
	}
	l.state.Set(key, strconv.FormatInt(n, 10))
}
