// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import (
	"context"

	"github.com/holiman/uint256"

	"github.com/erc777vm/erc777vm/codec"
	"github.com/erc777vm/erc777vm/storage"
)

// Transfer moves [amount] from [sender] to [recipient]. Total supply is
// untouched. Fails with storage.ErrInsufficientBalance when the sender
// lacks funds; the debit is checked before any write, so a failed
// transfer changes neither balance.
func (l *Ledger) Transfer(
	ctx context.Context,
	sender codec.Address,
	recipient codec.Address,
	amount *uint256.Int,
) error {
	if err := storage.SubBalance(ctx, l.mu, sender, amount); err != nil {
		return err
	}
	return storage.AddBalance(ctx, l.mu, recipient, amount)
}

// Send transfers [amount] from the invoking caller to [recipient]. The
// actor is the host-resolved immediate caller.
func (l *Ledger) Send(
	ctx context.Context,
	actor codec.Address,
	recipient codec.Address,
	amount *uint256.Int,
) error {
	return l.Transfer(ctx, actor, recipient, amount)
}
