// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import "errors"

var (
	ErrAlreadyInstalled   = errors.New("token is already installed")
	ErrInvalidGranularity = errors.New("granularity must be at least 1")
	ErrInvalidAllocation  = errors.New("allocation has no balance")
)
