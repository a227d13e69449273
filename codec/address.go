// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
)

const AddressLen = 33

// Address identifiers are tagged: the leading byte records whether the
// holder is an external account or another contract, the remaining 32
// bytes are the holder's ID. Equality is structural and addresses are
// never mutated once constructed.
const (
	AccountID  uint8 = 0x0
	ContractID uint8 = 0x1
)

type Address [AddressLen]byte

var EmptyAddress = Address{}

// CreateAddress returns the [Address] made from concatenating [typeID]
// with [id].
func CreateAddress(typeID uint8, id ids.ID) Address {
	a := make([]byte, AddressLen)
	a[0] = typeID
	copy(a[1:], id[:])
	return Address(a)
}

// AccountAddress returns the address of an external account holder.
func AccountAddress(id ids.ID) Address {
	return CreateAddress(AccountID, id)
}

// ContractAddress returns the address of an on-chain contract holder.
func ContractAddress(id ids.ID) Address {
	return CreateAddress(ContractID, id)
}

// TypeID returns the variant tag of the address.
func (a Address) TypeID() uint8 {
	return a[0]
}

// StringToAddress parses a hex-encoded address with an optional 0x
// prefix.
func StringToAddress(s string) (Address, error) {
	var a Address
	if err := a.UnmarshalText([]byte(s)); err != nil {
		return EmptyAddress, err
	}
	return a, nil
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return "0x" + hex.EncodeToString(a[:])
}

// MarshalText returns the hex representation of a.
func (a Address) MarshalText() ([]byte, error) {
	result := make([]byte, len(a)*2+2)
	copy(result, `0x`)
	hex.Encode(result[2:], a[:])
	return result, nil
}

// UnmarshalText parses a hex-encoded address.
func (a *Address) UnmarshalText(input []byte) error {
	if len(input) >= 2 && input[0] == '0' && input[1] == 'x' {
		input = input[2:]
	}
	decoded, err := hex.DecodeString(string(input))
	if err != nil {
		return err
	}
	if len(decoded) != AddressLen {
		return fmt.Errorf("%w: expected %d bytes, got %d", ErrBadAddressLen, AddressLen, len(decoded))
	}
	copy(a[:], decoded)
	return nil
}
