// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "errors"

var ErrMissingAmount = errors.New("missing amount")
