// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/holiman/uint256"

	"github.com/erc777vm/erc777vm/codec"
	"github.com/erc777vm/erc777vm/consts"
	"github.com/erc777vm/erc777vm/state"
)

// State
// 0x0/ (token metadata)
//   -> nameLen|name|symbolLen|symbol|decimals|granularity
// 0x1/ (balance)
//   -> [owner] => amount
// 0x2/ (total supply)
//   -> amount
// 0x3/ (operator grants)
//   -> [holder|operator] => 0x1
// 0x4/ (default operators)
//   -> count|address...

const (
	metadataPrefix        = 0x0
	balancePrefix         = 0x1
	supplyPrefix          = 0x2
	operatorPrefix        = 0x3
	defaultOperatorPrefix = 0x4
)

var (
	metadataKey        = []byte{metadataPrefix}
	supplyKey          = []byte{supplyPrefix}
	defaultOperatorKey = []byte{defaultOperatorPrefix}

	operatorSet = []byte{0x1}
)

// [balancePrefix] + [address]
func BalanceKey(addr codec.Address) (k []byte) {
	k = make([]byte, 1+codec.AddressLen)
	k[0] = balancePrefix
	copy(k[1:], addr[:])
	return
}

// GetBalance returns the stored balance of [addr]. An address with no
// entry has balance zero; that is not an error.
func GetBalance(
	ctx context.Context,
	im state.Immutable,
	addr codec.Address,
) (*uint256.Int, error) {
	k := BalanceKey(addr)
	return innerGetAmount(im.GetValue(ctx, k))
}

// SetBalance unconditionally replaces the stored balance of [addr].
func SetBalance(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	balance *uint256.Int,
) error {
	return setAmount(ctx, mu, BalanceKey(addr), balance)
}

// AddBalance credits [amount] to [addr] with checked arithmetic.
func AddBalance(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	amount *uint256.Int,
) error {
	k := BalanceKey(addr)
	bal, err := innerGetAmount(mu.GetValue(ctx, k))
	if err != nil {
		return err
	}
	nbal, overflow := new(uint256.Int).AddOverflow(bal, amount)
	if overflow {
		return fmt.Errorf(
			"%w: could not add balance (bal=%s, addr=%s, amount=%s)",
			ErrOverflow,
			bal,
			addr,
			amount,
		)
	}
	return setAmount(ctx, mu, k, nbal)
}

// SubBalance debits [amount] from [addr] with checked arithmetic. The
// entry is kept when the balance reaches zero.
func SubBalance(
	ctx context.Context,
	mu state.Mutable,
	addr codec.Address,
	amount *uint256.Int,
) error {
	k := BalanceKey(addr)
	bal, err := innerGetAmount(mu.GetValue(ctx, k))
	if err != nil {
		return err
	}
	nbal, underflow := new(uint256.Int).SubOverflow(bal, amount)
	if underflow {
		return fmt.Errorf(
			"%w: could not subtract balance (bal=%s, addr=%s, amount=%s)",
			ErrInsufficientBalance,
			bal,
			addr,
			amount,
		)
	}
	return setAmount(ctx, mu, k, nbal)
}

func GetTotalSupply(ctx context.Context, im state.Immutable) (*uint256.Int, error) {
	return innerGetAmount(im.GetValue(ctx, supplyKey))
}

func SetTotalSupply(ctx context.Context, mu state.Mutable, supply *uint256.Int) error {
	return setAmount(ctx, mu, supplyKey, supply)
}

func innerGetAmount(v []byte, err error) (*uint256.Int, error) {
	if errors.Is(err, database.ErrNotFound) {
		return uint256.NewInt(0), nil
	}
	if err != nil {
		return nil, err
	}
	if len(v) != consts.AmountLen {
		return nil, fmt.Errorf("%w: amount is %d bytes", ErrInvalidValue, len(v))
	}
	return new(uint256.Int).SetBytes(v), nil
}

func setAmount(ctx context.Context, mu state.Mutable, k []byte, amount *uint256.Int) error {
	v := amount.Bytes32()
	return mu.Insert(ctx, k, v[:])
}

// [operatorPrefix] + [holder] + [operator]
func OperatorKey(holder codec.Address, operator codec.Address) (k []byte) {
	k = make([]byte, 1+codec.AddressLen*2)
	k[0] = operatorPrefix
	copy(k[1:], holder[:])
	copy(k[1+codec.AddressLen:], operator[:])
	return
}

// HasOperator reports whether [operator] holds an explicit grant from
// [holder]. The default operator set is not consulted here.
func HasOperator(
	ctx context.Context,
	im state.Immutable,
	holder codec.Address,
	operator codec.Address,
) (bool, error) {
	_, err := im.GetValue(ctx, OperatorKey(holder, operator))
	if errors.Is(err, database.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// SetOperator records an explicit grant. Idempotent.
func SetOperator(
	ctx context.Context,
	mu state.Mutable,
	holder codec.Address,
	operator codec.Address,
) error {
	return mu.Insert(ctx, OperatorKey(holder, operator), operatorSet)
}

// DeleteOperator removes an explicit grant. Idempotent; removing a
// grant that was never made is not an error.
func DeleteOperator(
	ctx context.Context,
	mu state.Mutable,
	holder codec.Address,
	operator codec.Address,
) error {
	return mu.Remove(ctx, OperatorKey(holder, operator))
}

// GetDefaultOperators returns the installation-time default operator
// set, pre-authorized for every holder.
func GetDefaultOperators(
	ctx context.Context,
	im state.Immutable,
) ([]codec.Address, error) {
	v, err := im.GetValue(ctx, defaultOperatorKey)
	if errors.Is(err, database.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(v) < consts.Uint16Len {
		return nil, fmt.Errorf("%w: default operators are %d bytes", ErrInvalidValue, len(v))
	}
	count := int(binary.BigEndian.Uint16(v))
	if len(v) != consts.Uint16Len+count*codec.AddressLen {
		return nil, fmt.Errorf("%w: default operators are %d bytes", ErrInvalidValue, len(v))
	}
	operators := make([]codec.Address, count)
	for i := 0; i < count; i++ {
		copy(operators[i][:], v[consts.Uint16Len+i*codec.AddressLen:])
	}
	return operators, nil
}

// SetDefaultOperators replaces the default operator set. Written once
// at installation.
func SetDefaultOperators(
	ctx context.Context,
	mu state.Mutable,
	operators []codec.Address,
) error {
	v := make([]byte, consts.Uint16Len+len(operators)*codec.AddressLen)
	binary.BigEndian.PutUint16(v, uint16(len(operators)))
	for i, operator := range operators {
		copy(v[consts.Uint16Len+i*codec.AddressLen:], operator[:])
	}
	return mu.Insert(ctx, defaultOperatorKey, v)
}

// SetTokenMetadata writes the immutable scalar facts fixed at
// installation.
func SetTokenMetadata(
	ctx context.Context,
	mu state.Mutable,
	name string,
	symbol string,
	decimals uint8,
	granularity uint8,
) error {
	nameLen := len(name)
	symbolLen := len(symbol)
	v := make([]byte, consts.Uint16Len*2+nameLen+symbolLen+consts.ByteLen*2)
	binary.BigEndian.PutUint16(v, uint16(nameLen))
	copy(v[consts.Uint16Len:], name)
	binary.BigEndian.PutUint16(v[consts.Uint16Len+nameLen:], uint16(symbolLen))
	copy(v[consts.Uint16Len*2+nameLen:], symbol)
	v[consts.Uint16Len*2+nameLen+symbolLen] = decimals
	v[consts.Uint16Len*2+nameLen+symbolLen+1] = granularity
	return mu.Insert(ctx, metadataKey, v)
}

// GetTokenMetadata reads the installation facts. [exists] is false
// before installation.
func GetTokenMetadata(
	ctx context.Context,
	im state.Immutable,
) (bool, string, string, uint8, uint8, error) {
	v, err := im.GetValue(ctx, metadataKey)
	if errors.Is(err, database.ErrNotFound) {
		return false, "", "", 0, 0, nil
	}
	if err != nil {
		return false, "", "", 0, 0, err
	}
	if len(v) < consts.Uint16Len {
		return false, "", "", 0, 0, fmt.Errorf("%w: metadata is %d bytes", ErrInvalidValue, len(v))
	}
	nameLen := int(binary.BigEndian.Uint16(v))
	if len(v) < consts.Uint16Len*2+nameLen {
		return false, "", "", 0, 0, fmt.Errorf("%w: metadata is %d bytes", ErrInvalidValue, len(v))
	}
	name := string(v[consts.Uint16Len : consts.Uint16Len+nameLen])
	symbolLen := int(binary.BigEndian.Uint16(v[consts.Uint16Len+nameLen:]))
	if len(v) != consts.Uint16Len*2+nameLen+symbolLen+consts.ByteLen*2 {
		return false, "", "", 0, 0, fmt.Errorf("%w: metadata is %d bytes", ErrInvalidValue, len(v))
	}
	symbol := string(v[consts.Uint16Len*2+nameLen : consts.Uint16Len*2+nameLen+symbolLen])
	decimals := v[consts.Uint16Len*2+nameLen+symbolLen]
	granularity := v[consts.Uint16Len*2+nameLen+symbolLen+1]
	return true, name, symbol, decimals, granularity, nil
}
