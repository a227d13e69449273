// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/json"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"
)

func TestAddress(t *testing.T) {
	require := require.New(t)
	addrID := ids.GenerateTestID()

	addr := AccountAddress(addrID)
	require.Equal(AccountID, addr.TypeID())

	addrStr, err := addr.MarshalText()
	require.NoError(err)

	var parsedAddr Address
	require.NoError(parsedAddr.UnmarshalText(addrStr))
	require.Equal(addr, parsedAddr)
}

func TestAddressJSON(t *testing.T) {
	require := require.New(t)
	addr := ContractAddress(ids.GenerateTestID())
	require.Equal(ContractID, addr.TypeID())

	addrJSONBytes, err := json.Marshal(addr)
	require.NoError(err)

	var parsedAddr Address
	require.NoError(json.Unmarshal(addrJSONBytes, &parsedAddr))
	require.Equal(addr, parsedAddr)
}

func TestAddressString(t *testing.T) {
	require := require.New(t)
	addr := AccountAddress(ids.GenerateTestID())

	originalAddr, err := StringToAddress(addr.String())
	require.NoError(err)
	require.Equal(addr, originalAddr)
}

func TestAddressBadLength(t *testing.T) {
	require := require.New(t)
	_, err := StringToAddress("0x0011")
	require.ErrorIs(err, ErrBadAddressLen)
}

func TestAddressVariantsDistinct(t *testing.T) {
	require := require.New(t)
	id := ids.GenerateTestID()
	require.NotEqual(AccountAddress(id), ContractAddress(id))
}
