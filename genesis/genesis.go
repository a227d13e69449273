// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/holiman/uint256"

	"github.com/erc777vm/erc777vm/codec"
	"github.com/erc777vm/erc777vm/state"
	"github.com/erc777vm/erc777vm/storage"
)

type CustomAllocation struct {
	Address codec.Address `json:"address"`
	Balance *uint256.Int  `json:"balance"`
}

type Genesis struct {
	// Token Metadata
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    uint8  `json:"decimals"`
	Granularity uint8  `json:"granularity"`

	// InitialSupply is credited to the installing caller.
	InitialSupply *uint256.Int `json:"initialSupply"`

	// DefaultOperators are pre-authorized for every holder. The
	// installer is always seeded into this set.
	DefaultOperators []codec.Address `json:"defaultOperators"`

	// Allocations
	CustomAllocations []*CustomAllocation `json:"customAllocations"`
}

func Default() *Genesis {
	return &Genesis{
		Name:        "ERC777 Token",
		Symbol:      "ERC",
		Decimals:    18,
		Granularity: 1,

		InitialSupply: uint256.NewInt(0),
	}
}

func New(b []byte) (*Genesis, error) {
	g := Default()
	if len(b) > 0 {
		if err := json.Unmarshal(b, g); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", string(b), err)
		}
	}
	// A null initialSupply means zero; a null allocation balance is a
	// config mistake.
	if g.InitialSupply == nil {
		g.InitialSupply = uint256.NewInt(0)
	}
	for _, alloc := range g.CustomAllocations {
		if alloc.Balance == nil {
			return nil, fmt.Errorf("%w: addr=%s", ErrInvalidAllocation, alloc.Address)
		}
	}
	return g, nil
}

// Load installs the token: metadata, the installer's initial balance,
// any custom allocations, the total supply covering all credits, and
// the default operator set. It refuses to run twice against the same
// state.
func (g *Genesis) Load(
	ctx context.Context,
	tracer trace.Tracer,
	mu state.Mutable,
	installer codec.Address,
) error {
	ctx, span := tracer.Start(ctx, "Genesis.Load")
	defer span.End()

	exists, _, _, _, _, err := storage.GetTokenMetadata(ctx, mu)
	if err != nil {
		return err
	}
	if exists {
		return ErrAlreadyInstalled
	}
	if g.Granularity == 0 {
		return ErrInvalidGranularity
	}
	if err := storage.SetTokenMetadata(ctx, mu, g.Name, g.Symbol, g.Decimals, g.Granularity); err != nil {
		return err
	}

	supply := uint256.NewInt(0)
	if g.InitialSupply != nil {
		supply.Set(g.InitialSupply)
		if err := storage.AddBalance(ctx, mu, installer, g.InitialSupply); err != nil {
			return fmt.Errorf("%w: installer=%s", err, installer)
		}
	}
	for _, alloc := range g.CustomAllocations {
		if alloc.Balance == nil {
			return fmt.Errorf("%w: addr=%s", ErrInvalidAllocation, alloc.Address)
		}
		nsupply, overflow := new(uint256.Int).AddOverflow(supply, alloc.Balance)
		if overflow {
			return fmt.Errorf(
				"%w: allocations exceed the amount range (addr=%s, bal=%s)",
				storage.ErrOverflow,
				alloc.Address,
				alloc.Balance,
			)
		}
		supply = nsupply
		if err := storage.AddBalance(ctx, mu, alloc.Address, alloc.Balance); err != nil {
			return fmt.Errorf("%w: addr=%s, bal=%s", err, alloc.Address, alloc.Balance)
		}
	}
	if err := storage.SetTotalSupply(ctx, mu, supply); err != nil {
		return err
	}

	// The installer is its own default operator; configured defaults
	// follow, deduplicated.
	operators := []codec.Address{installer}
	seen := map[codec.Address]struct{}{installer: {}}
	for _, operator := range g.DefaultOperators {
		if _, ok := seen[operator]; ok {
			continue
		}
		seen[operator] = struct{}{}
		operators = append(operators, operator)
	}
	return storage.SetDefaultOperators(ctx, mu, operators)
}
