// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"
	"fmt"

	"github.com/holiman/uint256"

	"github.com/erc777vm/erc777vm/codec"
	"github.com/erc777vm/erc777vm/storage"
)

// Mint credits [amount] new tokens to [owner] and grows the total
// supply by the same amount. Only the supply admin may mint.
func (l *Ledger) Mint(
	ctx context.Context,
	actor codec.Address,
	owner codec.Address,
	amount *uint256.Int,
) error {
	if actor != l.admin {
		return fmt.Errorf("%w: actor=%s", ErrNotAdmin, actor)
	}
	return l.mint(ctx, owner, amount)
}

// Burn debits [amount] from [owner] and shrinks the total supply by the
// same amount. Only the supply admin may burn directly; holders delegate
// burning through OperatorBurn.
func (l *Ledger) Burn(
	ctx context.Context,
	actor codec.Address,
	owner codec.Address,
	amount *uint256.Int,
) error {
	if actor != l.admin {
		return fmt.Errorf("%w: actor=%s", ErrNotAdmin, actor)
	}
	return l.burn(ctx, owner, amount)
}

// mint validates both additions before writing either, so an overflow
// failure leaves balance and supply untouched.
func (l *Ledger) mint(ctx context.Context, owner codec.Address, amount *uint256.Int) error {
	balance, err := storage.GetBalance(ctx, l.mu, owner)
	if err != nil {
		return err
	}
	newBalance, overflow := new(uint256.Int).AddOverflow(balance, amount)
	if overflow {
		return fmt.Errorf(
			"%w: could not mint (bal=%s, addr=%s, amount=%s)",
			storage.ErrOverflow,
			balance,
			owner,
			amount,
		)
	}
	supply, err := storage.GetTotalSupply(ctx, l.mu)
	if err != nil {
		return err
	}
	newSupply, overflow := new(uint256.Int).AddOverflow(supply, amount)
	if overflow {
		return fmt.Errorf(
			"%w: could not grow supply (supply=%s, amount=%s)",
			storage.ErrOverflow,
			supply,
			amount,
		)
	}
	if err := storage.SetBalance(ctx, l.mu, owner, newBalance); err != nil {
		return err
	}
	return storage.SetTotalSupply(ctx, l.mu, newSupply)
}

func (l *Ledger) burn(ctx context.Context, owner codec.Address, amount *uint256.Int) error {
	balance, err := storage.GetBalance(ctx, l.mu, owner)
	if err != nil {
		return err
	}
	newBalance, underflow := new(uint256.Int).SubOverflow(balance, amount)
	if underflow {
		return fmt.Errorf(
			"%w: could not burn (bal=%s, addr=%s, amount=%s)",
			storage.ErrInsufficientBalance,
			balance,
			owner,
			amount,
		)
	}
	supply, err := storage.GetTotalSupply(ctx, l.mu)
	if err != nil {
		return err
	}
	// Supply always covers every balance, so this underflow can only
	// mean a corrupted ledger.
	newSupply, underflow := new(uint256.Int).SubOverflow(supply, amount)
	if underflow {
		return fmt.Errorf(
			"%w: could not shrink supply (supply=%s, amount=%s)",
			storage.ErrOverflow,
			supply,
			amount,
		)
	}
	if err := storage.SetBalance(ctx, l.mu, owner, newBalance); err != nil {
		return err
	}
	return storage.SetTotalSupply(ctx, l.mu, newSupply)
}
