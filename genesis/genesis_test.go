// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/trace"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/erc777vm/erc777vm/codec"
	"github.com/erc777vm/erc777vm/state"
	"github.com/erc777vm/erc777vm/storage"
)

func TestNewFromJSON(t *testing.T) {
	require := require.New(t)

	g, err := New([]byte(`{
		"name": "Wrapped Example",
		"symbol": "WEX",
		"decimals": 8,
		"granularity": 2,
		"initialSupply": 1000
	}`))
	require.NoError(err)
	require.Equal("Wrapped Example", g.Name)
	require.Equal("WEX", g.Symbol)
	require.Equal(uint8(8), g.Decimals)
	require.Equal(uint8(2), g.Granularity)
	require.Equal(uint256.NewInt(1_000), g.InitialSupply)
}

func TestNewDefaults(t *testing.T) {
	require := require.New(t)

	g, err := New(nil)
	require.NoError(err)
	require.Equal(Default(), g)
	require.True(g.InitialSupply.IsZero())
}

func TestLoad(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := state.NewInMemoryStore()
	installer := codec.AccountAddress(ids.GenerateTestID())
	holder := codec.AccountAddress(ids.GenerateTestID())

	g := Default()
	g.InitialSupply = uint256.NewInt(1_000)
	g.CustomAllocations = []*CustomAllocation{
		{Address: holder, Balance: uint256.NewInt(250)},
	}
	require.NoError(g.Load(ctx, trace.Noop, mu, installer))

	bal, err := storage.GetBalance(ctx, mu, installer)
	require.NoError(err)
	require.Equal(uint256.NewInt(1_000), bal)

	bal, err = storage.GetBalance(ctx, mu, holder)
	require.NoError(err)
	require.Equal(uint256.NewInt(250), bal)

	// Supply covers every credit.
	supply, err := storage.GetTotalSupply(ctx, mu)
	require.NoError(err)
	require.Equal(uint256.NewInt(1_250), supply)

	// Installer is seeded as a default operator.
	operators, err := storage.GetDefaultOperators(ctx, mu)
	require.NoError(err)
	require.Equal([]codec.Address{installer}, operators)

	exists, name, symbol, _, _, err := storage.GetTokenMetadata(ctx, mu)
	require.NoError(err)
	require.True(exists)
	require.Equal(g.Name, name)
	require.Equal(g.Symbol, symbol)
}

func TestLoadSeedsConfiguredDefaultOperators(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := state.NewInMemoryStore()
	installer := codec.AccountAddress(ids.GenerateTestID())
	custodian := codec.ContractAddress(ids.GenerateTestID())

	g := Default()
	g.DefaultOperators = []codec.Address{custodian, installer, custodian}
	require.NoError(g.Load(ctx, trace.Noop, mu, installer))

	operators, err := storage.GetDefaultOperators(ctx, mu)
	require.NoError(err)
	require.Equal([]codec.Address{installer, custodian}, operators)
}

func TestLoadTwiceFails(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := state.NewInMemoryStore()
	installer := codec.AccountAddress(ids.GenerateTestID())

	g := Default()
	require.NoError(g.Load(ctx, trace.Noop, mu, installer))
	require.ErrorIs(g.Load(ctx, trace.Noop, mu, installer), ErrAlreadyInstalled)
}

func TestNewNormalizesNullInitialSupply(t *testing.T) {
	require := require.New(t)

	g, err := New([]byte(`{"initialSupply": null}`))
	require.NoError(err)
	require.NotNil(g.InitialSupply)
	require.True(g.InitialSupply.IsZero())
}

func TestNewRejectsAllocationWithoutBalance(t *testing.T) {
	require := require.New(t)

	_, err := New([]byte(`{
		"customAllocations": [
			{"address": "0x000000000000000000000000000000000000000000000000000000000000000000"}
		]
	}`))
	require.ErrorIs(err, ErrInvalidAllocation)
}

func TestLoadRejectsAllocationWithoutBalance(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := state.NewInMemoryStore()
	installer := codec.AccountAddress(ids.GenerateTestID())
	holder := codec.AccountAddress(ids.GenerateTestID())

	g := Default()
	g.CustomAllocations = []*CustomAllocation{{Address: holder}}
	err := g.Load(ctx, trace.Noop, mu, installer)
	require.ErrorIs(err, ErrInvalidAllocation)
}

func TestLoadRejectsZeroGranularity(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()
	mu := state.NewInMemoryStore()

	g := Default()
	g.Granularity = 0
	err := g.Load(ctx, trace.Noop, mu, codec.AccountAddress(ids.GenerateTestID()))
	require.ErrorIs(err, ErrInvalidGranularity)
}
