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

// AuthorizeOperator adds [operator] to [holder]'s explicit grant set.
// Idempotent.
func (l *Ledger) AuthorizeOperator(
	ctx context.Context,
	holder codec.Address,
	operator codec.Address,
) error {
	return storage.SetOperator(ctx, l.mu, holder, operator)
}

// RevokeOperator removes [operator] from [holder]'s explicit grant set.
// Idempotent; the installation-time default set is not per-holder
// mutable, so revoking an operator that is only a default has no
// effect on authorization queries.
func (l *Ledger) RevokeOperator(
	ctx context.Context,
	holder codec.Address,
	operator codec.Address,
) error {
	return storage.DeleteOperator(ctx, l.mu, holder, operator)
}

// IsOperatorFor reports whether [operator] may act on [holder]'s
// behalf: a member of the default set or an explicit grant.
func (l *Ledger) IsOperatorFor(
	ctx context.Context,
	operator codec.Address,
	holder codec.Address,
) (bool, error) {
	has, err := storage.HasOperator(ctx, l.mu, holder, operator)
	if err != nil {
		return false, err
	}
	if has {
		return true, nil
	}
	defaults, err := storage.GetDefaultOperators(ctx, l.mu)
	if err != nil {
		return false, err
	}
	for _, d := range defaults {
		if d == operator {
			return true, nil
		}
	}
	return false, nil
}

// OperatorSend transfers [amount] from [holder] to [recipient] on the
// authority of [operator]. [data] and [operatorData] are opaque
// payloads carried with the transfer; recipient hooks are not
// implemented, so they are not interpreted here.
func (l *Ledger) OperatorSend(
	ctx context.Context,
	operator codec.Address,
	holder codec.Address,
	recipient codec.Address,
	amount *uint256.Int,
	_ []byte, // data
	_ []byte, // operatorData
) error {
	if err := l.checkOperator(ctx, operator, holder); err != nil {
		return err
	}
	return l.Transfer(ctx, holder, recipient, amount)
}

// OperatorBurn burns [amount] from [holder] on the authority of
// [operator]. Authorization comes from the holder's grant, not the
// supply-admin capability.
func (l *Ledger) OperatorBurn(
	ctx context.Context,
	operator codec.Address,
	holder codec.Address,
	amount *uint256.Int,
	_ []byte, // data
	_ []byte, // operatorData
) error {
	if err := l.checkOperator(ctx, operator, holder); err != nil {
		return err
	}
	return l.burn(ctx, holder, amount)
}

func (l *Ledger) checkOperator(ctx context.Context, operator codec.Address, holder codec.Address) error {
	ok, err := l.IsOperatorFor(ctx, operator, holder)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: operator=%s holder=%s", ErrNotAuthorized, operator, holder)
	}
	return nil
}
