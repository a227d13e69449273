// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/erc777vm/erc777vm/codec"
	"github.com/erc777vm/erc777vm/genesis"
	"github.com/erc777vm/erc777vm/state"
	"github.com/erc777vm/erc777vm/storage"
)

// install seeds a fresh ledger with [initialSupply] credited to the
// returned installer, who is also the supply admin.
func install(t *testing.T, initialSupply uint64) (*Ledger, *state.InMemoryStore, codec.Address) {
	t.Helper()
	require := require.New(t)
	mu := state.NewInMemoryStore()
	installer := codec.AccountAddress(ids.GenerateTestID())

	g := genesis.Default()
	g.Name = "Wrapped Example"
	g.Symbol = "WEX"
	g.InitialSupply = uint256.NewInt(initialSupply)
	require.NoError(g.Load(context.Background(), trace.Noop, mu, installer))
	return New(mu, installer), mu, installer
}

func sumBalances(t *testing.T, l *Ledger, addrs ...codec.Address) *uint256.Int {
	t.Helper()
	require := require.New(t)
	sum := uint256.NewInt(0)
	for _, addr := range addrs {
		bal, err := l.BalanceOf(context.Background(), addr)
		require.NoError(err)
		sum.Add(sum, bal)
	}
	return sum
}

func TestQueries(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, installer := install(t, 1_000)

	name, err := l.Name(ctx)
	require.NoError(err)
	require.Equal("Wrapped Example", name)

	symbol, err := l.Symbol(ctx)
	require.NoError(err)
	require.Equal("WEX", symbol)

	decimals, err := l.Decimals(ctx)
	require.NoError(err)
	require.Equal(uint8(18), decimals)

	granularity, err := l.Granularity(ctx)
	require.NoError(err)
	require.Equal(uint8(1), granularity)

	supply, err := l.TotalSupply(ctx)
	require.NoError(err)
	require.Equal(uint256.NewInt(1_000), supply)

	operators, err := l.DefaultOperators(ctx)
	require.NoError(err)
	require.Equal([]codec.Address{installer}, operators)
}

func TestQueriesBeforeInstall(t *testing.T) {
	require := require.New(t)
	l := New(state.NewInMemoryStore(), codec.EmptyAddress)

	_, err := l.Name(context.Background())
	require.ErrorIs(err, ErrNotInstalled)
}

func TestTransferConservation(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, a := install(t, 1_000)
	b := codec.AccountAddress(ids.GenerateTestID())
	c := codec.AccountAddress(ids.GenerateTestID())

	require.NoError(l.Transfer(ctx, a, b, uint256.NewInt(400)))
	require.NoError(l.Transfer(ctx, b, c, uint256.NewInt(150)))
	require.NoError(l.Transfer(ctx, c, a, uint256.NewInt(25)))

	supply, err := l.TotalSupply(ctx)
	require.NoError(err)
	require.Equal(uint256.NewInt(1_000), supply)
	require.Equal(supply, sumBalances(t, l, a, b, c))
}

func TestTransferInsufficientBalance(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, a := install(t, 1_000)
	b := codec.AccountAddress(ids.GenerateTestID())

	err := l.Transfer(ctx, a, b, uint256.NewInt(1_001))
	require.ErrorIs(err, storage.ErrInsufficientBalance)

	// Both balances are unchanged.
	bal, err := l.BalanceOf(ctx, a)
	require.NoError(err)
	require.Equal(uint256.NewInt(1_000), bal)
	bal, err = l.BalanceOf(ctx, b)
	require.NoError(err)
	require.True(bal.IsZero())
}

func TestSendResolvesActorAsSender(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, a := install(t, 1_000)
	b := codec.AccountAddress(ids.GenerateTestID())

	require.NoError(l.Send(ctx, a, b, uint256.NewInt(400)))
	bal, err := l.BalanceOf(ctx, b)
	require.NoError(err)
	require.Equal(uint256.NewInt(400), bal)
}

func TestMintBurnSymmetry(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, admin := install(t, 1_000)

	require.NoError(l.Mint(ctx, admin, admin, uint256.NewInt(50)))
	require.NoError(l.Burn(ctx, admin, admin, uint256.NewInt(50)))

	bal, err := l.BalanceOf(ctx, admin)
	require.NoError(err)
	require.Equal(uint256.NewInt(1_000), bal)
	supply, err := l.TotalSupply(ctx)
	require.NoError(err)
	require.Equal(uint256.NewInt(1_000), supply)
}

func TestMintOverflowLeavesStateUnchanged(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, mu, admin := install(t, 0)

	maxAmount := new(uint256.Int).SetAllOne()
	require.NoError(storage.SetBalance(ctx, mu, admin, maxAmount))
	require.NoError(storage.SetTotalSupply(ctx, mu, maxAmount))

	err := l.Mint(ctx, admin, admin, uint256.NewInt(1))
	require.ErrorIs(err, storage.ErrOverflow)

	bal, err := l.BalanceOf(ctx, admin)
	require.NoError(err)
	require.Equal(maxAmount, bal)
	supply, err := l.TotalSupply(ctx)
	require.NoError(err)
	require.Equal(maxAmount, supply)
}

func TestMintSupplyOverflowLeavesStateUnchanged(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, mu, admin := install(t, 0)
	holder := codec.AccountAddress(ids.GenerateTestID())

	// The holder balance can absorb the mint but the supply cannot.
	require.NoError(storage.SetTotalSupply(ctx, mu, new(uint256.Int).SetAllOne()))

	err := l.Mint(ctx, admin, holder, uint256.NewInt(1))
	require.ErrorIs(err, storage.ErrOverflow)

	bal, err := l.BalanceOf(ctx, holder)
	require.NoError(err)
	require.True(bal.IsZero())
}

func TestMintRequiresAdmin(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, _ := install(t, 1_000)
	outsider := codec.AccountAddress(ids.GenerateTestID())

	err := l.Mint(ctx, outsider, outsider, uint256.NewInt(1))
	require.ErrorIs(err, ErrNotAdmin)
	require.ErrorIs(l.Burn(ctx, outsider, outsider, uint256.NewInt(1)), ErrNotAdmin)
}

func TestBurnInsufficientBalance(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, admin := install(t, 1_000)
	b := codec.AccountAddress(ids.GenerateTestID())

	require.NoError(l.Transfer(ctx, admin, b, uint256.NewInt(400)))
	err := l.Burn(ctx, admin, b, uint256.NewInt(500))
	require.ErrorIs(err, storage.ErrInsufficientBalance)

	bal, err := l.BalanceOf(ctx, b)
	require.NoError(err)
	require.Equal(uint256.NewInt(400), bal)
	supply, err := l.TotalSupply(ctx)
	require.NoError(err)
	require.Equal(uint256.NewInt(1_000), supply)
}

// The full scenario from the design review: install 1000 to A, transfer
// 400 to B, mint 50 to A, then a burn of 500 from B fails and changes
// nothing.
func TestLedgerScenario(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, a := install(t, 1_000)
	b := codec.AccountAddress(ids.GenerateTestID())

	require.NoError(l.Transfer(ctx, a, b, uint256.NewInt(400)))
	bal, err := l.BalanceOf(ctx, a)
	require.NoError(err)
	require.Equal(uint256.NewInt(600), bal)
	bal, err = l.BalanceOf(ctx, b)
	require.NoError(err)
	require.Equal(uint256.NewInt(400), bal)

	require.NoError(l.Mint(ctx, a, a, uint256.NewInt(50)))
	bal, err = l.BalanceOf(ctx, a)
	require.NoError(err)
	require.Equal(uint256.NewInt(650), bal)
	supply, err := l.TotalSupply(ctx)
	require.NoError(err)
	require.Equal(uint256.NewInt(1_050), supply)

	require.ErrorIs(l.Burn(ctx, a, b, uint256.NewInt(500)), storage.ErrInsufficientBalance)
	bal, err = l.BalanceOf(ctx, b)
	require.NoError(err)
	require.Equal(uint256.NewInt(400), bal)
}

func TestOperatorAuthorization(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, a := install(t, 1_000)
	op := codec.AccountAddress(ids.GenerateTestID())

	ok, err := l.IsOperatorFor(ctx, op, a)
	require.NoError(err)
	require.False(ok)

	require.NoError(l.AuthorizeOperator(ctx, a, op))
	require.NoError(l.AuthorizeOperator(ctx, a, op)) // idempotent
	ok, err = l.IsOperatorFor(ctx, op, a)
	require.NoError(err)
	require.True(ok)

	require.NoError(l.RevokeOperator(ctx, a, op))
	ok, err = l.IsOperatorFor(ctx, op, a)
	require.NoError(err)
	require.False(ok)

	// Revoking a never-authorized operator succeeds with no change.
	require.NoError(l.RevokeOperator(ctx, a, op))
}

func TestDefaultOperatorIsAuthorizedForEveryHolder(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, installer := install(t, 1_000)
	holder := codec.AccountAddress(ids.GenerateTestID())

	// The installer is seeded as a default operator and may act for any
	// holder without an explicit grant.
	ok, err := l.IsOperatorFor(ctx, installer, holder)
	require.NoError(err)
	require.True(ok)

	// Revocation does not reach the default set.
	require.NoError(l.RevokeOperator(ctx, holder, installer))
	ok, err = l.IsOperatorFor(ctx, installer, holder)
	require.NoError(err)
	require.True(ok)
}

func TestOperatorSend(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, a := install(t, 1_000)
	op := codec.AccountAddress(ids.GenerateTestID())
	op2 := codec.AccountAddress(ids.GenerateTestID())
	c := codec.AccountAddress(ids.GenerateTestID())

	require.NoError(l.AuthorizeOperator(ctx, a, op))
	require.NoError(l.OperatorSend(ctx, op, a, c, uint256.NewInt(100), []byte("inv-42"), nil))

	bal, err := l.BalanceOf(ctx, a)
	require.NoError(err)
	require.Equal(uint256.NewInt(900), bal)
	bal, err = l.BalanceOf(ctx, c)
	require.NoError(err)
	require.Equal(uint256.NewInt(100), bal)

	// An unauthorized operator cannot move funds.
	err = l.OperatorSend(ctx, op2, a, c, uint256.NewInt(100), nil, nil)
	require.ErrorIs(err, ErrNotAuthorized)
	bal, err = l.BalanceOf(ctx, a)
	require.NoError(err)
	require.Equal(uint256.NewInt(900), bal)
}

func TestOperatorBurn(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, a := install(t, 1_000)
	op := codec.AccountAddress(ids.GenerateTestID())

	require.NoError(l.AuthorizeOperator(ctx, a, op))
	require.NoError(l.OperatorBurn(ctx, op, a, uint256.NewInt(300), nil, nil))

	bal, err := l.BalanceOf(ctx, a)
	require.NoError(err)
	require.Equal(uint256.NewInt(700), bal)
	supply, err := l.TotalSupply(ctx)
	require.NoError(err)
	require.Equal(uint256.NewInt(700), supply)

	// The operator path does not require the supply admin, but it does
	// require authorization.
	require.NoError(l.RevokeOperator(ctx, a, op))
	err = l.OperatorBurn(ctx, op, a, uint256.NewInt(1), nil, nil)
	require.ErrorIs(err, ErrNotAuthorized)
}

func TestSelfTransfer(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, a := install(t, 1_000)

	require.NoError(l.Transfer(ctx, a, a, uint256.NewInt(400)))
	bal, err := l.BalanceOf(ctx, a)
	require.NoError(err)
	require.Equal(uint256.NewInt(1_000), bal)
}

func TestZeroAmountTransfer(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	l, _, a := install(t, 0)
	b := codec.AccountAddress(ids.GenerateTestID())

	// A holder with no funds can still move zero.
	require.NoError(l.Transfer(ctx, a, b, uint256.NewInt(0)))
}
