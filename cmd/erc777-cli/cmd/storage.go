// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"errors"

	"github.com/ava-labs/avalanchego/database"

	"github.com/erc777vm/erc777vm/codec"
)

// adminKey lives outside the ledger key space (every ledger key starts
// with a prefix byte below 0x5).
var adminKey = []byte("config/admin")

func storeAdmin(db database.Database, admin codec.Address) error {
	return db.Put(adminKey, admin[:])
}

func getAdmin(db database.Database) (codec.Address, error) {
	v, err := db.Get(adminKey)
	if errors.Is(err, database.ErrNotFound) {
		return codec.EmptyAddress, ErrNoAdmin
	}
	if err != nil {
		return codec.EmptyAddress, err
	}
	if len(v) != codec.AddressLen {
		return codec.EmptyAddress, codec.ErrBadAddressLen
	}
	return codec.Address(v), nil
}
