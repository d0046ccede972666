package sdk

import "strings"

// AddressDomain groups identities by who controls them.
type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

// Address is an opaque, globally unique actor reference. Ledger instances use
// the contract: prefix, human actors anything else (hive:alice, did:key:...).
type Address string

// String returns the literal representation (like hive:alice) of the address.
// Example payload: sdk.Address("hive:foo").String()
func (a Address) String() string {
	return string(a)
}

// Domain quickly checks the prefix to decide if we deal with a user/contract/system identity.
// Example payload: sdk.Address("contract:dao:0").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// IsZero reports whether the address is empty, used as a light sanity check.
func (a Address) IsZero() bool {
	return a == ""
}
