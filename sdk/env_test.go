package sdk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnv(t *testing.T) {
	e := NewEnv("hive:alice")
	assert.Equal(t, Address("hive:alice"), e.Caller)
	assert.NotEmpty(t, e.TxID)
	assert.NotZero(t, e.Timestamp)
}

func TestNewEnvAt(t *testing.T) {
	e := NewEnvAt("hive:alice", 1700000000)
	assert.EqualValues(t, 1700000000, e.Timestamp)
}

func TestRequireAuth(t *testing.T) {
	e := NewEnv("hive:alice")
	assert.NoError(t, e.RequireAuth("hive:alice"))

	err := e.RequireAuth("hive:bob")
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	err = e.RequireAuth("")
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestRequireAuthAcceptsRequiredAuths(t *testing.T) {
	e := NewEnv("hive:alice")
	e.RequiredAuths = append(e.RequiredAuths, "hive:bob")
	assert.NoError(t, e.RequireAuth("hive:bob"))
	assert.True(t, e.HasAuth("hive:bob"))
	assert.False(t, e.HasAuth("hive:carol"))
}

func TestSubCall(t *testing.T) {
	e := NewEnvAt("hive:alice", 1700000000)
	sub := e.SubCall("contract:dao:0")

	require.Equal(t, Address("contract:dao:0"), sub.Caller)
	assert.NoError(t, sub.RequireAuth("contract:dao:0"))
	// the original signer does not carry into the sub-call
	assert.Error(t, sub.RequireAuth("hive:alice"))
	// the transaction context does
	assert.Equal(t, e.TxID, sub.TxID)
	assert.Equal(t, e.Timestamp, sub.Timestamp)
}

func TestAddressDomain(t *testing.T) {
	assert.Equal(t, AddressDomainUser, Address("hive:alice").Domain())
	assert.Equal(t, AddressDomainContract, Address("contract:dao:0").Domain())
	assert.Equal(t, AddressDomainSystem, Address("system:fees").Domain())
	assert.True(t, Address("").IsZero())
	assert.False(t, Address("hive:alice").IsZero())
}
