// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"os"

	"github.com/ava-labs/avalanchego/database"
	"github.com/holiman/uint256"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/erc777vm/erc777vm/codec"
	"github.com/erc777vm/erc777vm/genesis"
	"github.com/erc777vm/erc777vm/pebble"
	"github.com/erc777vm/erc777vm/rpc"
)

func parseAddress(s string) (codec.Address, error) {
	return codec.StringToAddress(s)
}

func parseAmount(s string) (*uint256.Int, error) {
	return uint256.FromDecimal(s)
}

func openDatabase() (database.Database, *prometheus.Registry, error) {
	return pebble.New(dataDir, pebble.NewDefaultConfig())
}

// loadGenesis reads the configured genesis file, falling back to the
// defaults when the file does not exist.
func loadGenesis() (*genesis.Genesis, error) {
	b, err := os.ReadFile(genesisFile)
	if err != nil {
		if os.IsNotExist(err) {
			return genesis.Default(), nil
		}
		return nil, err
	}
	return genesis.New(b)
}

func newClient() *rpc.JSONRPCClient {
	return rpc.NewJSONRPCClient(endpoint)
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}
