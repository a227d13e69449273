// Copyright (C) 2024, ERC777VM Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import "errors"

var ErrBadAddressLen = errors.New("invalid address length")
