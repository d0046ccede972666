package distribution_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"crowdfund_dao/dao"
	"crowdfund_dao/distribution"
	"crowdfund_dao/payment"
	"crowdfund_dao/sdk"
	"crowdfund_dao/token"
)

const (
	daoAddr   = sdk.Address("contract:dao:0")
	tokenAddr = sdk.Address("contract:token:0")
	distAddr  = sdk.Address("contract:dist:0")
	creator   = sdk.Address("hive:creator")
	alice     = sdk.Address("hive:alice")
	bob       = sdk.Address("hive:bob")
)

type fixture struct {
	dao   *dao.Ledger
	token *token.Ledger
	pay   *payment.Ledger
	dist  *distribution.Distributor
}

// newFixture builds a funded campaign with the given per-investor stakes and a
// distributor whose account holds fund.
func newFixture(t *testing.T, stakes map[sdk.Address]uint64, fund uint64) *fixture {
	t.Helper()
	lgr := zap.NewNop()

	tok := token.New(sdk.NewMemState(), tokenAddr, lgr)
	require.NoError(t, tok.Initialize(sdk.NewEnv(daoAddr), daoAddr))
	pay := payment.New(sdk.NewMemState(), lgr)
	d := dao.New(sdk.NewMemState(), daoAddr, tok, pay, lgr)
	require.NoError(t, d.Initialize(sdk.NewEnv(creator), "solar farm", "", 1000, creator))

	for _, inv := range []sdk.Address{alice, bob} {
		if amt, ok := stakes[inv]; ok {
			require.NoError(t, d.Invest(sdk.NewEnv(inv), inv, amt))
		}
	}
	if fund > 0 {
		require.NoError(t, pay.Deposit(sdk.NewEnv(distAddr), distAddr, fund))
	}
	return &fixture{
		dao:   d,
		token: tok,
		pay:   pay,
		dist:  distribution.NewDistributor(distAddr, pay, lgr),
	}
}

func TestDistributeProRata(t *testing.T) {
	f := newFixture(t, map[sdk.Address]uint64{alice: 600, bob: 400}, 1000)

	require.NoError(t, f.dist.Distribute(sdk.NewEnv(distAddr), f.dao, 1000))

	assert.EqualValues(t, 600, f.pay.Balance(alice))
	assert.EqualValues(t, 400, f.pay.Balance(bob))
	assert.EqualValues(t, 0, f.pay.Balance(distAddr))

	hist := f.dao.DistributionHistory()
	require.Len(t, hist, 1)
	assert.EqualValues(t, 1000, hist[0].Amount)
}

func TestDistributeKeepsFloorRemainder(t *testing.T) {
	// shares 1:2, profit 10: floor payouts 3 and 6, remainder 1 stays put
	f := newFixture(t, map[sdk.Address]uint64{alice: 1, bob: 2}, 10)

	require.NoError(t, f.dist.Distribute(sdk.NewEnv(distAddr), f.dao, 10))

	assert.EqualValues(t, 3, f.pay.Balance(alice))
	assert.EqualValues(t, 6, f.pay.Balance(bob))
	assert.EqualValues(t, 1, f.pay.Balance(distAddr))
}

func TestDistributeZeroProfitFails(t *testing.T) {
	f := newFixture(t, map[sdk.Address]uint64{alice: 100}, 0)
	err := f.dist.Distribute(sdk.NewEnv(distAddr), f.dao, 0)
	assert.ErrorIs(t, err, sdk.ErrInvalidAmount)
}

func TestDistributeWithoutSharesFails(t *testing.T) {
	f := newFixture(t, nil, 100)
	err := f.dist.Distribute(sdk.NewEnv(distAddr), f.dao, 100)
	assert.ErrorIs(t, err, sdk.ErrDivisionByZero)
	assert.Empty(t, f.dao.DistributionHistory())
}

func TestDistributeSkipsDustPayouts(t *testing.T) {
	// alice's share floors to zero: 3*1/1001 = 0. bob gets 3*1000/1001 = 2.
	f := newFixture(t, map[sdk.Address]uint64{alice: 1, bob: 1000}, 3)

	require.NoError(t, f.dist.Distribute(sdk.NewEnv(distAddr), f.dao, 3))

	assert.EqualValues(t, 0, f.pay.Balance(alice))
	assert.EqualValues(t, 2, f.pay.Balance(bob))
	assert.EqualValues(t, 1, f.pay.Balance(distAddr))
}

func TestDistributeSkipsEmptiedHolders(t *testing.T) {
	f := newFixture(t, map[sdk.Address]uint64{alice: 500, bob: 500}, 1000)
	// alice moved her tokens away after investing
	require.NoError(t, f.token.Transfer(sdk.NewEnv(alice), alice, bob, 500))

	require.NoError(t, f.dist.Distribute(sdk.NewEnv(distAddr), f.dao, 1000))

	assert.EqualValues(t, 0, f.pay.Balance(alice))
	assert.EqualValues(t, 1000, f.pay.Balance(bob))
}

func TestDistributeLargeValues(t *testing.T) {
	// profit * balance overflows uint64; the wide intermediate must not
	f := newFixture(t, map[sdk.Address]uint64{alice: 1 << 40, bob: 1 << 40}, 1<<40)

	require.NoError(t, f.dist.Distribute(sdk.NewEnv(distAddr), f.dao, 1<<40))

	assert.EqualValues(t, uint64(1)<<39, f.pay.Balance(alice))
	assert.EqualValues(t, uint64(1)<<39, f.pay.Balance(bob))
}

func TestDistributeUnderfundedStopsPartway(t *testing.T) {
	// the distributor holds less than the total payout: alice is paid,
	// bob's transfer fails, and no audit record is written
	f := newFixture(t, map[sdk.Address]uint64{alice: 600, bob: 400}, 700)

	err := f.dist.Distribute(sdk.NewEnv(distAddr), f.dao, 1000)
	assert.ErrorIs(t, err, sdk.ErrInsufficientBalance)

	assert.EqualValues(t, 600, f.pay.Balance(alice))
	assert.EqualValues(t, 0, f.pay.Balance(bob))
	assert.Empty(t, f.dao.DistributionHistory())
}
