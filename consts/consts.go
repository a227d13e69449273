// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

const (
	Name    = "erc777vm"
	Version = "v0.0.1"
)

const (
	ByteLen   = 1
	Uint16Len = 2

	// AmountLen is the canonical big-endian encoding size of a balance or
	// supply value.
	AmountLen = 32
)
