// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"github.com/ava-labs/avalanchego/trace"
	"github.com/holiman/uint256"

	"github.com/erc777vm/erc777vm/codec"
	"github.com/erc777vm/erc777vm/genesis"
)

type Controller interface {
	Genesis() *genesis.Genesis
	Tracer() trace.Tracer

	Metadata(ctx context.Context) (string, string, uint8, uint8, error)
	TotalSupply(ctx context.Context) (*uint256.Int, error)
	Balance(ctx context.Context, addr codec.Address) (*uint256.Int, error)
	IsOperatorFor(ctx context.Context, operator codec.Address, holder codec.Address) (bool, error)
	DefaultOperators(ctx context.Context) ([]codec.Address, error)

	Send(ctx context.Context, actor codec.Address, recipient codec.Address, amount *uint256.Int) error
	AuthorizeOperator(ctx context.Context, actor codec.Address, operator codec.Address) error
	RevokeOperator(ctx context.Context, actor codec.Address, operator codec.Address) error
	OperatorSend(ctx context.Context, operator codec.Address, holder codec.Address, recipient codec.Address, amount *uint256.Int, data []byte, operatorData []byte) error
	OperatorBurn(ctx context.Context, operator codec.Address, holder codec.Address, amount *uint256.Int, data []byte, operatorData []byte) error
}
