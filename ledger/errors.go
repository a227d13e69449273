// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package ledger

import "errors"

var (
	ErrNotInstalled  = errors.New("token is not installed")
	ErrNotAdmin      = errors.New("actor is not the supply admin")
	ErrNotAuthorized = errors.New("operator is not authorized for holder")
)
