// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// Package ledger orchestrates the balance store, supply counter, and
// operator registry into the token's operations. Every operation runs
// over a single state view; the host commits or discards the view as a
// whole, so a failed operation never leaves partial writes behind.
//
// Caller identity is resolved by the host and trusted here. The only
// privilege the ledger enforces itself is the supply-admin capability
// gating Mint and Burn.
package ledger

import (
	"context"

	"github.com/holiman/uint256"

	"github.com/erc777vm/erc777vm/codec"
	"github.com/erc777vm/erc777vm/state"
	"github.com/erc777vm/erc777vm/storage"
)

type Ledger struct {
	mu state.Mutable

	// admin is the only address allowed to mint and burn directly. It
	// is threaded through the constructor rather than checked at the
	// entry-point layer so that wiring up a public entry point cannot
	// silently expose supply changes.
	admin codec.Address
}

func New(mu state.Mutable, admin codec.Address) *Ledger {
	return &Ledger{mu: mu, admin: admin}
}

func (l *Ledger) metadata(ctx context.Context) (string, string, uint8, uint8, error) {
	exists, name, symbol, decimals, granularity, err := storage.GetTokenMetadata(ctx, l.mu)
	if err != nil {
		return "", "", 0, 0, err
	}
	if !exists {
		return "", "", 0, 0, ErrNotInstalled
	}
	return name, symbol, decimals, granularity, nil
}

func (l *Ledger) Name(ctx context.Context) (string, error) {
	name, _, _, _, err := l.metadata(ctx)
	return name, err
}

func (l *Ledger) Symbol(ctx context.Context) (string, error) {
	_, symbol, _, _, err := l.metadata(ctx)
	return symbol, err
}

func (l *Ledger) Decimals(ctx context.Context) (uint8, error) {
	_, _, decimals, _, err := l.metadata(ctx)
	return decimals, err
}

// Granularity is the smallest indivisible unit of the token. It is an
// installation fact exposed as a read value, not enforced by the
// arithmetic here.
func (l *Ledger) Granularity(ctx context.Context) (uint8, error) {
	_, _, _, granularity, err := l.metadata(ctx)
	return granularity, err
}

func (l *Ledger) TotalSupply(ctx context.Context) (*uint256.Int, error) {
	return storage.GetTotalSupply(ctx, l.mu)
}

func (l *Ledger) BalanceOf(ctx context.Context, addr codec.Address) (*uint256.Int, error) {
	return storage.GetBalance(ctx, l.mu, addr)
}

func (l *Ledger) DefaultOperators(ctx context.Context) ([]codec.Address, error) {
	return storage.GetDefaultOperators(ctx, l.mu)
}
