package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"crowdfund_dao/sdk"
)

const (
	adminAddr = sdk.Address("contract:dao:0")
	alice     = sdk.Address("hive:alice")
	bob       = sdk.Address("hive:bob")
	carol     = sdk.Address("hive:carol")
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l := New(sdk.NewMemState(), "contract:token:0", zap.NewNop())
	require.NoError(t, l.Initialize(sdk.NewEnv(adminAddr), adminAddr))
	return l
}

func adminEnv() sdk.Env { return sdk.NewEnv(adminAddr) }

func TestInitializeTwiceFails(t *testing.T) {
	l := newTestLedger(t)
	err := l.Initialize(adminEnv(), adminAddr)
	assert.ErrorIs(t, err, sdk.ErrAlreadyInitialized)
}

func TestMintRequiresAdmin(t *testing.T) {
	l := newTestLedger(t)
	err := l.Mint(sdk.NewEnv(alice), alice, 100)
	assert.ErrorIs(t, err, sdk.ErrNotAuthenticated)
	assert.EqualValues(t, 0, l.Balance(alice))
	assert.EqualValues(t, 0, l.TotalSupply())
}

func TestMintZeroAmountFails(t *testing.T) {
	l := newTestLedger(t)
	err := l.Mint(adminEnv(), alice, 0)
	assert.ErrorIs(t, err, sdk.ErrInvalidAmount)

	err = l.Mint(adminEnv(), alice, -5)
	assert.ErrorIs(t, err, sdk.ErrInvalidAmount)
}

func TestMintOverflowRejected(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(adminEnv(), alice, 1<<62))
	err := l.Mint(adminEnv(), bob, 1<<62+1<<61)
	assert.ErrorIs(t, err, sdk.ErrAmountOverflow)
	// nothing moved
	assert.EqualValues(t, 0, l.Balance(bob))
	assert.EqualValues(t, int64(1<<62), l.TotalSupply())
}

func TestBurn(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(adminEnv(), alice, 100))

	require.NoError(t, l.Burn(sdk.NewEnv(alice), alice, 40))
	assert.EqualValues(t, 60, l.Balance(alice))
	assert.EqualValues(t, 60, l.TotalSupply())

	err := l.Burn(sdk.NewEnv(alice), alice, 61)
	assert.ErrorIs(t, err, sdk.ErrInsufficientBalance)

	err = l.Burn(sdk.NewEnv(bob), alice, 10)
	assert.ErrorIs(t, err, sdk.ErrNotAuthenticated)
}

func TestTransfer(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(adminEnv(), alice, 100))

	require.NoError(t, l.Transfer(sdk.NewEnv(alice), alice, bob, 30))
	assert.EqualValues(t, 70, l.Balance(alice))
	assert.EqualValues(t, 30, l.Balance(bob))

	err := l.Transfer(sdk.NewEnv(alice), alice, bob, 71)
	assert.ErrorIs(t, err, sdk.ErrInsufficientBalance)

	err = l.Transfer(sdk.NewEnv(bob), alice, bob, 10)
	assert.ErrorIs(t, err, sdk.ErrNotAuthenticated)

	// self transfer is a no-op once the balance check passed
	require.NoError(t, l.Transfer(sdk.NewEnv(alice), alice, alice, 10))
	assert.EqualValues(t, 70, l.Balance(alice))
}

func TestApproveOverwrites(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Approve(sdk.NewEnv(alice), alice, bob, 50))
	assert.EqualValues(t, 50, l.Allowance(alice, bob))

	// approve sets, never increments
	require.NoError(t, l.Approve(sdk.NewEnv(alice), alice, bob, 20))
	assert.EqualValues(t, 20, l.Allowance(alice, bob))

	// zero is a valid allowance, negative is not
	require.NoError(t, l.Approve(sdk.NewEnv(alice), alice, bob, 0))
	assert.EqualValues(t, 0, l.Allowance(alice, bob))
	err := l.Approve(sdk.NewEnv(alice), alice, bob, -1)
	assert.ErrorIs(t, err, sdk.ErrInvalidAmount)
}

func TestTransferFrom(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(adminEnv(), alice, 100))
	require.NoError(t, l.Approve(sdk.NewEnv(alice), alice, bob, 50))

	require.NoError(t, l.TransferFrom(sdk.NewEnv(bob), bob, alice, carol, 30))
	assert.EqualValues(t, 70, l.Balance(alice))
	assert.EqualValues(t, 30, l.Balance(carol))
	assert.EqualValues(t, 20, l.Allowance(alice, bob))
}

func TestTransferFromExceedingAllowance(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(adminEnv(), alice, 100))
	require.NoError(t, l.Approve(sdk.NewEnv(alice), alice, bob, 50))

	err := l.TransferFrom(sdk.NewEnv(bob), bob, alice, carol, 51)
	assert.ErrorIs(t, err, sdk.ErrInsufficientAllowance)
	// nothing mutated
	assert.EqualValues(t, 100, l.Balance(alice))
	assert.EqualValues(t, 0, l.Balance(carol))
	assert.EqualValues(t, 50, l.Allowance(alice, bob))
}

func TestTransferFromExceedingBalance(t *testing.T) {
	l := newTestLedger(t)
	require.NoError(t, l.Mint(adminEnv(), alice, 20))
	require.NoError(t, l.Approve(sdk.NewEnv(alice), alice, bob, 50))

	err := l.TransferFrom(sdk.NewEnv(bob), bob, alice, carol, 30)
	assert.ErrorIs(t, err, sdk.ErrInsufficientBalance)
	assert.EqualValues(t, 50, l.Allowance(alice, bob))
	assert.EqualValues(t, 20, l.Balance(alice))
}

// TestConservation drives a mixed operation sequence and checks the supply
// always equals the sum over every identity ever touched.
func TestConservation(t *testing.T) {
	l := newTestLedger(t)
	touched := []sdk.Address{alice, bob, carol}

	sum := func() int64 {
		var s int64
		for _, who := range touched {
			bal := l.Balance(who)
			assert.GreaterOrEqual(t, bal, int64(0), "no negative balance observable")
			s += bal
		}
		return s
	}

	steps := []func() error{
		func() error { return l.Mint(adminEnv(), alice, 1000) },
		func() error { return l.Mint(adminEnv(), bob, 500) },
		func() error { return l.Transfer(sdk.NewEnv(alice), alice, carol, 250) },
		func() error { return l.Burn(sdk.NewEnv(bob), bob, 100) },
		func() error { return l.Approve(sdk.NewEnv(carol), carol, bob, 200) },
		func() error { return l.TransferFrom(sdk.NewEnv(bob), bob, carol, bob, 150) },
		func() error { return l.Transfer(sdk.NewEnv(bob), bob, alice, 600) },
		func() error { return l.Burn(sdk.NewEnv(carol), carol, 100) },
	}
	for _, step := range steps {
		_ = step() // success or failure, conservation must hold
		assert.Equal(t, l.TotalSupply(), sum())
	}
	assert.EqualValues(t, 1300, l.TotalSupply())
}
